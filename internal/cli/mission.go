package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/questdeck/questdeck/internal/quest"
)

// MissionOptions holds flags for the mission command.
type MissionOptions struct {
	*RootOptions
	Hour       int
	Difficulty int
	Seed       int64
}

// MissionResult is the JSON payload for a mission pick.
type MissionResult struct {
	Hour       string `json:"hour"`
	Zone       string `json:"zone"`
	ZoneName   string `json:"zone_name"`
	Icon       string `json:"icon"`
	QuestType  string `json:"quest_type"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	Movement   string `json:"movement"`
	Thinking   string `json:"thinking"`
	Proof      string `json:"proof"`
	XP         int    `json:"xp"`
	Difficulty int    `json:"difficulty"`
}

// NewMissionCommand creates the mission command.
func NewMissionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MissionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Pick a mission for the current time of day",
		Long: `Pick a mission from the zone covering the given hour. Each hour of
the day belongs to a themed zone with its own mission list; missions
above the difficulty cap are skipped when easier ones exist.

Example:
  questdeck mission
  questdeck mission --hour 14 --difficulty 3 --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMission(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Hour, "hour", -1, "hour of day 0-23 (default: current hour)")
	cmd.Flags().IntVar(&opts.Difficulty, "difficulty", 5, "maximum mission difficulty 1-5")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (default: current time)")

	return cmd
}

func runMission(opts *MissionOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	hour := opts.Hour
	if !cmd.Flags().Changed("hour") {
		hour = time.Now().Hour()
	}

	seed := opts.Seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	zone := quest.ZoneForHour(hour)
	mission := quest.PickMission(hour, opts.Difficulty, quest.NewSeededSource(seed))

	result := MissionResult{
		Hour:       quest.FormatHour(hour),
		Zone:       zone.ID,
		ZoneName:   zone.Name,
		Icon:       zone.Icon,
		QuestType:  zone.QuestType,
		ID:         mission.ID,
		Title:      mission.Title,
		Movement:   mission.Movement,
		Thinking:   mission.Thinking,
		Proof:      mission.Proof,
		XP:         mission.XP,
		Difficulty: mission.Difficulty,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%s %s (%s, %s)\n", result.Icon, result.ZoneName, result.Hour, result.QuestType)
	fmt.Fprintf(formatter.Writer, "%s  (difficulty %d, %d XP)\n", result.Title, result.Difficulty, result.XP)
	fmt.Fprintf(formatter.Writer, "  Movement: %s\n", result.Movement)
	fmt.Fprintf(formatter.Writer, "  Thinking: %s\n", result.Thinking)
	fmt.Fprintf(formatter.Writer, "  Proof:    %s\n", result.Proof)
	return nil
}
