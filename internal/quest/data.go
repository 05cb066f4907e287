package quest

// Documented minimum pool sizes after expansion. Tests assert against
// these so a careless template edit can't silently shrink a pool.
const (
	MinProofItems = 100
	MinQuestItems = 150
	MinNoteItems  = 100
)

// Shared substitution value lists. Order matters: expansion walks each
// list front to back, so reordering a list renumbers generated items.
// Append only.
var (
	shapeNames = []string{
		"circle", "square", "triangle", "star", "heart", "diamond",
		"oval", "hexagon", "arrow", "spiral", "crescent", "cross",
	}
	colorNames = []string{
		"red", "blue", "green", "yellow", "orange", "purple", "pink", "brown",
	}
	animalNames = []string{
		"fox", "owl", "bear", "rabbit", "wolf", "otter", "hedgehog",
		"falcon", "turtle", "lynx",
	}
	virtueNames = []string{
		"patience", "courage", "kindness", "focus", "honesty",
		"curiosity", "calm", "grit",
	}
	moveNames = []string{
		"jumping jacks", "squats", "arm circles", "toe touches",
		"high knees", "lunges", "star jumps", "heel raises",
	}
)

// poolDef describes one built-in pool before expansion.
type poolDef struct {
	name   string
	prefix string
	seeds  []Item
	rules  []ExpandRule
}

// builtinPools returns the built-in pool definitions in registration
// order. Seeds and rules are append-only: published IDs must never be
// renumbered, so new content goes at the end of a list, never in the
// middle.
func builtinPools() []poolDef {
	return []poolDef{
		{name: "proof", prefix: "P", seeds: proofSeeds, rules: proofRules},
		{name: "quest", prefix: "Q", seeds: questSeeds, rules: questRules},
		{name: "note", prefix: "N", seeds: noteSeeds, rules: noteRules},
	}
}

// proofSeeds are the hand-curated completion-proof prompts.
// Expanded IDs continue from P029.
var proofSeeds = []Item{
	{ID: "P001", Text: "Check the box when you are done.", Tags: []string{"check"}},
	{ID: "P002", Text: "Draw a quick sketch of what you made.", Tags: []string{"sketch"}},
	{ID: "P003", Text: "Write one word about how it went.", Tags: []string{"word"}},
	{ID: "P004", Text: "Show your page to someone and collect a smile.", Tags: []string{"social"}},
	{ID: "P005", Text: "Put a big tick next to the hardest part.", Tags: []string{"check"}},
	{ID: "P006", Text: "Trace over your answer with a second color.", Tags: []string{"sketch", "check"}},
	{ID: "P007", Text: "Count your finished steps out loud.", Tags: []string{"count"}},
	{ID: "P008", Text: "Give yourself a thumbs-up in the margin.", Tags: []string{"sketch"}},
	{ID: "P009", Text: "Whisper \"done\" like a secret agent.", Tags: []string{"word"}},
	{ID: "P010", Text: "Draw a medal and write today's date inside it.", Tags: []string{"sketch", "stars"}},
	{ID: "P011", Text: "Fold the corner of the page like a trophy flag.", Tags: []string{"check"}},
	{ID: "P012", Text: "Ask a grown-up to initial next to your work.", Tags: []string{"social", "check"}},
	{ID: "P013", Text: "Underline your favorite part twice.", Tags: []string{"check"}},
	{ID: "P014", Text: "Do a silent victory dance for five seconds.", Tags: []string{"movement"}},
	{ID: "P015", Text: "Write the time you finished.", Tags: []string{"word", "count"}},
	{ID: "P016", Text: "Draw a frame around the whole exercise.", Tags: []string{"sketch"}},
	{ID: "P017", Text: "Take a photo in your head: blink twice to save it.", Tags: []string{"calm"}},
	{ID: "P018", Text: "Stack three small things on the desk as a monument.", Tags: []string{"build"}},
	{ID: "P019", Text: "Read your answer out loud in a robot voice.", Tags: []string{"word", "social"}},
	{ID: "P020", Text: "Color the page number in.", Tags: []string{"sketch", "count"}},
	{ID: "P021", Text: "High-five the nearest person, wall, or pet.", Tags: []string{"social", "movement"}},
	{ID: "P022", Text: "Write your initials in fancy letters at the bottom.", Tags: []string{"word", "sketch"}},
	{ID: "P023", Text: "Put a dot in the margin for every minute it took.", Tags: []string{"count"}},
	{ID: "P024", Text: "Close your eyes and repeat the best bit to yourself.", Tags: []string{"calm"}},
	{ID: "P025", Text: "Draw a tiny flag on the summit of the page.", Tags: []string{"sketch", "stars"}},
	{ID: "P026", Text: "Tell your chair it did a great job holding you.", Tags: []string{"social", "word"}},
	{ID: "P027", Text: "Circle the trickiest word you wrote.", Tags: []string{"check", "word"}},
	{ID: "P028", Text: "Stand up, stretch tall, and sit back down: sealed.", Tags: []string{"movement", "check"}},
}

// proofRules generate P029 onward.
var proofRules = []ExpandRule{
	{Template: "Draw a small %s next to the task when it is done.", Values: shapeNames, Tags: []string{"sketch"}},
	{Template: "Color one %s in the margin for each finished step.", Values: shapeNames, Tags: []string{"sketch", "count"}},
	{Template: "Trace a %s in the air, then check the box.", Values: shapeNames, Tags: []string{"movement", "check"}},
	{Template: "Draw a %s sticker beside your answer.", Values: shapeNames, Tags: []string{"sketch"}},
	{Template: "Write the first letter of %s beside the box.", Values: colorNames, Tags: []string{"word"}},
	{Template: "Whisper the word %s when you finish, like a password.", Values: colorNames, Tags: []string{"word", "check"}},
	{Template: "Draw a %s wearing a tiny crown when the page is done.", Values: animalNames, Tags: []string{"sketch", "stars"}},
}

// questSeeds are the hand-curated mini-challenges.
// Expanded IDs continue from Q031.
var questSeeds = []Item{
	{ID: "Q001", Text: "Find something older than you in this room.", Tags: []string{"hunt", "logic"}},
	{ID: "Q002", Text: "Balance on one leg while counting backward from ten.", Tags: []string{"movement", "count"}},
	{ID: "Q003", Text: "Invent a name for the pen or pencil you are holding.", Tags: []string{"word", "stars"}},
	{ID: "Q004", Text: "Spot three things that make a sound when tapped.", Tags: []string{"hunt", "count"}},
	{ID: "Q005", Text: "Walk to the door and back without making a sound.", Tags: []string{"movement", "calm"}},
	{ID: "Q006", Text: "Sort everything on the table from light to heavy.", Tags: []string{"logic", "build"}},
	{ID: "Q007", Text: "Say the alphabet but skip every letter in your name.", Tags: []string{"word", "logic"}},
	{ID: "Q008", Text: "Find the smallest thing you can see without moving.", Tags: []string{"hunt"}},
	{ID: "Q009", Text: "Hold your breath while drawing one perfect line.", Tags: []string{"calm", "sketch"}},
	{ID: "Q010", Text: "Make your hand into an animal and let it explore the desk.", Tags: []string{"movement", "stars"}},
	{ID: "Q011", Text: "Count the corners in this room, including sneaky ones.", Tags: []string{"count", "logic"}},
	{ID: "Q012", Text: "Give today a title, like a book chapter.", Tags: []string{"word", "stars"}},
	{ID: "Q013", Text: "Touch four different materials and rank their softness.", Tags: []string{"hunt", "logic"}},
	{ID: "Q014", Text: "March in place while naming five fruits.", Tags: []string{"movement", "word"}},
	{ID: "Q015", Text: "Build a bridge between two books using only paper.", Tags: []string{"build"}},
	{ID: "Q016", Text: "Find a shadow and guess what time its owner wakes up.", Tags: []string{"hunt", "stars"}},
	{ID: "Q017", Text: "Blink exactly seven times, slowly, like a sleepy owl.", Tags: []string{"calm", "count"}},
	{ID: "Q018", Text: "Stack a tower as tall as your hand in under a minute.", Tags: []string{"build", "movement"}},
	{ID: "Q019", Text: "Describe your socks to an invisible scientist.", Tags: []string{"word", "social"}},
	{ID: "Q020", Text: "Find two things that rhyme with each other, roughly.", Tags: []string{"hunt", "word"}},
	{ID: "Q021", Text: "Tiptoe a full circle around your chair.", Tags: []string{"movement"}},
	{ID: "Q022", Text: "Pick a spot on the wall and guard it with your eyes for 20 seconds.", Tags: []string{"calm", "logic"}},
	{ID: "Q023", Text: "Count how many steps it takes to cross the room heel-to-toe.", Tags: []string{"count", "movement"}},
	{ID: "Q024", Text: "Make the quietest possible clap, then the fastest.", Tags: []string{"movement", "calm"}},
	{ID: "Q025", Text: "Find a thing that starts with the same letter as your name.", Tags: []string{"hunt", "word"}},
	{ID: "Q026", Text: "Plan a secret handshake with exactly three moves.", Tags: []string{"social", "movement"}},
	{ID: "Q027", Text: "Sort five toys from smallest to biggest, then backward.", Tags: []string{"logic", "build"}},
	{ID: "Q028", Text: "Ask someone what their favorite smell is.", Tags: []string{"social"}},
	{ID: "Q029", Text: "Draw a map from your seat to the nearest window.", Tags: []string{"sketch", "logic"}},
	{ID: "Q030", Text: "Hum a tune and conduct it with one finger.", Tags: []string{"stars", "calm"}},
}

// questRules generate Q031 onward.
var questRules = []ExpandRule{
	{Template: "Find three %s things in the room and point at them.", Values: colorNames, Tags: []string{"hunt", "movement"}},
	{Template: "Draw a %s and turn it into an animal.", Values: shapeNames, Tags: []string{"sketch", "stars"}},
	{Template: "Count how many %s shapes you can spot around you.", Values: shapeNames, Tags: []string{"count", "logic"}},
	{Template: "Walk like a %s for ten steps.", Values: animalNames, Tags: []string{"movement"}},
	{Template: "Invent a secret greeting a %s would use.", Values: animalNames, Tags: []string{"social", "stars"}},
	{Template: "Build the tallest tower you can using only %s things.", Values: colorNames, Tags: []string{"build"}},
	{Template: "Trace a giant %s on the floor with your toe.", Values: shapeNames, Tags: []string{"movement"}},
	{Template: "Hide a paper %s and write one clue for finding it.", Values: shapeNames, Tags: []string{"logic", "hunt"}},
	{Template: "Do ten %s, then describe how your arms feel in one word.", Values: moveNames, Tags: []string{"movement", "word"}},
	{Template: "Teach a stuffed animal to do %s using only three words.", Values: moveNames, Tags: []string{"movement", "social"}},
	{Template: "Close your eyes, picture a %s, and describe it with two words.", Values: animalNames, Tags: []string{"calm", "logic"}},
	{Template: "Make up a two-line song about a %s.", Values: animalNames, Tags: []string{"stars", "social"}},
}

// noteSeeds are the hand-curated encouraging notes.
// Expanded IDs continue from N029.
var noteSeeds = []Item{
	{ID: "N001", Text: "You showed up today, and that already counts.", Tags: []string{"calm"}},
	{ID: "N002", Text: "Mistakes are proof that you are trying.", Tags: []string{"growth", "brave"}},
	{ID: "N003", Text: "Slow is smooth, and smooth is fast.", Tags: []string{"calm", "wisdom"}},
	{ID: "N004", Text: "Your brain grew a little just now. Really.", Tags: []string{"growth"}},
	{ID: "N005", Text: "Brave doesn't mean not scared. It means doing it anyway.", Tags: []string{"brave", "wisdom"}},
	{ID: "N006", Text: "One more try is always allowed.", Tags: []string{"growth", "brave"}},
	{ID: "N007", Text: "Quiet minds hear the best ideas.", Tags: []string{"calm", "focus"}},
	{ID: "N008", Text: "You are the captain of this page.", Tags: []string{"stars", "brave"}},
	{ID: "N009", Text: "Every expert was once a beginner with a pencil.", Tags: []string{"growth", "wisdom"}},
	{ID: "N010", Text: "Hard things get smaller when you start them.", Tags: []string{"wisdom", "brave"}},
	{ID: "N011", Text: "Breathe out slowly. The page will wait for you.", Tags: []string{"calm"}},
	{ID: "N012", Text: "Your questions matter more than your answers.", Tags: []string{"wisdom", "growth"}},
	{ID: "N013", Text: "A wobbly line drawn bravely beats a straight line never drawn.", Tags: []string{"brave", "stars"}},
	{ID: "N014", Text: "Today's best is enough. Tomorrow's best can be different.", Tags: []string{"calm", "wisdom"}},
	{ID: "N015", Text: "You can do hard things in small pieces.", Tags: []string{"growth", "focus"}},
	{ID: "N016", Text: "Somebody is proud of you right now.", Tags: []string{"stars"}},
	{ID: "N017", Text: "Focus is a muscle. You just did a rep.", Tags: []string{"focus", "growth"}},
	{ID: "N018", Text: "Kind words to yourself count double.", Tags: []string{"calm", "wisdom"}},
	{ID: "N019", Text: "The second try often knows things the first try didn't.", Tags: []string{"growth", "wisdom"}},
	{ID: "N020", Text: "You noticed something nobody else noticed today.", Tags: []string{"stars", "focus"}},
	{ID: "N021", Text: "Resting is part of the work.", Tags: []string{"calm"}},
	{ID: "N022", Text: "Your effort leaves footprints even when nobody claps.", Tags: []string{"growth", "stars"}},
	{ID: "N023", Text: "Curious beats perfect, every single time.", Tags: []string{"wisdom", "growth"}},
	{ID: "N024", Text: "You are allowed to be a beginner.", Tags: []string{"calm", "growth"}},
	{ID: "N025", Text: "Small wins stack into tall towers.", Tags: []string{"stars", "focus"}},
	{ID: "N026", Text: "Your pace is a real pace.", Tags: []string{"calm"}},
	{ID: "N027", Text: "Asking for help is a skill, not a weakness.", Tags: []string{"brave", "wisdom"}},
	{ID: "N028", Text: "The page doesn't have to be perfect to be finished.", Tags: []string{"calm", "wisdom"}},
}

// noteRules generate N029 onward.
var noteRules = []ExpandRule{
	{Template: "Be as patient as a %s today.", Values: animalNames, Tags: []string{"calm"}},
	{Template: "Your %s is growing every single day.", Values: virtueNames, Tags: []string{"growth"}},
	{Template: "A small step with %s beats a big step without it.", Values: virtueNames, Tags: []string{"wisdom"}},
	{Template: "Somewhere a %s is cheering for you.", Values: animalNames, Tags: []string{"stars"}},
	{Template: "Breathe in for four counts and think of a quiet %s.", Values: animalNames, Tags: []string{"calm"}},
	{Template: "Today's superpower: %s.", Values: virtueNames, Tags: []string{"stars"}},
	{Template: "When it feels hard, draw a tiny %s and keep going.", Values: shapeNames, Tags: []string{"sketch", "calm"}},
	{Template: "Find one %s thing today and smile at it.", Values: colorNames, Tags: []string{"hunt", "stars"}},
}
