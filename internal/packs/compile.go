package packs

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/questdeck/questdeck/internal/quest"
)

// PoolDef is a compiled-but-not-yet-expanded pool definition.
// Build runs the deterministic expansion and produces the final pool.
type PoolDef struct {
	Name   string
	Prefix string
	Seeds  []quest.Item
	Rules  []quest.ExpandRule
}

// Build expands the definition into an immutable pool. All ID and
// template validation happens here, inside quest.NewPool.
func (d *PoolDef) Build() (*quest.Pool, error) {
	return quest.NewPool(d.Name, d.Prefix, d.Seeds, d.Rules)
}

// CompileError is a pack compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompilePool parses a CUE value into a PoolDef.
//
// The CUE value should be the pool struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`pool: affirm: { ... }`)
//	def, err := CompilePool("affirm", v.LookupPath(cue.ParsePath("pool.affirm")))
func CompilePool(name string, v cue.Value) (*PoolDef, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	def := &PoolDef{Name: name}

	// prefix (required)
	prefixVal := v.LookupPath(cue.ParsePath("prefix"))
	if !prefixVal.Exists() {
		return nil, &CompileError{
			Field:   "prefix",
			Message: "prefix is required",
			Pos:     v.Pos(),
		}
	}
	prefix, err := prefixVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	def.Prefix = prefix

	// items (required, at least one)
	itemsVal := v.LookupPath(cue.ParsePath("items"))
	if !itemsVal.Exists() {
		return nil, &CompileError{
			Field:   "items",
			Message: "items list is required",
			Pos:     v.Pos(),
		}
	}
	def.Seeds, err = parseItems(itemsVal)
	if err != nil {
		return nil, err
	}
	if len(def.Seeds) == 0 {
		return nil, &CompileError{
			Field:   "items",
			Message: "at least one item is required",
			Pos:     itemsVal.Pos(),
		}
	}

	// expand (optional)
	expandVal := v.LookupPath(cue.ParsePath("expand"))
	if expandVal.Exists() {
		def.Rules, err = parseRules(expandVal)
		if err != nil {
			return nil, err
		}
	}

	return def, nil
}

// parseItems parses the seed item list.
func parseItems(v cue.Value) ([]quest.Item, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var items []quest.Item
	for iter.Next() {
		item, err := parseItem(iter.Value())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseItem parses one seed item: id and text required, tags optional.
func parseItem(v cue.Value) (quest.Item, error) {
	var item quest.Item

	idVal := v.LookupPath(cue.ParsePath("id"))
	if !idVal.Exists() {
		return item, &CompileError{Field: "items.id", Message: "id is required", Pos: v.Pos()}
	}
	id, err := idVal.String()
	if err != nil {
		return item, formatCUEError(err)
	}
	if !quest.ValidID(id) {
		return item, &CompileError{
			Field:   "items.id",
			Message: fmt.Sprintf("invalid item ID %q: want <prefix letter><3+ digits>, e.g. A001", id),
			Pos:     idVal.Pos(),
		}
	}
	item.ID = id

	textVal := v.LookupPath(cue.ParsePath("text"))
	if !textVal.Exists() {
		return item, &CompileError{Field: "items.text", Message: "text is required", Pos: v.Pos()}
	}
	item.Text, err = textVal.String()
	if err != nil {
		return item, formatCUEError(err)
	}
	if item.Text == "" {
		return item, &CompileError{Field: "items.text", Message: "text must be non-empty", Pos: textVal.Pos()}
	}

	item.Tags, err = parseStringList(v.LookupPath(cue.ParsePath("tags")), "items.tags")
	if err != nil {
		return item, err
	}
	item.Tags = quest.NormalizeTags(item.Tags)

	return item, nil
}

// parseRules parses the expansion rule list.
func parseRules(v cue.Value) ([]quest.ExpandRule, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var rules []quest.ExpandRule
	for iter.Next() {
		rv := iter.Value()
		var rule quest.ExpandRule

		tmplVal := rv.LookupPath(cue.ParsePath("template"))
		if !tmplVal.Exists() {
			return nil, &CompileError{Field: "expand.template", Message: "template is required", Pos: rv.Pos()}
		}
		rule.Template, err = tmplVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}

		rule.Values, err = parseStringList(rv.LookupPath(cue.ParsePath("values")), "expand.values")
		if err != nil {
			return nil, err
		}
		if len(rule.Values) == 0 {
			return nil, &CompileError{Field: "expand.values", Message: "values list is required and must be non-empty", Pos: rv.Pos()}
		}

		rule.Tags, err = parseStringList(rv.LookupPath(cue.ParsePath("tags")), "expand.tags")
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}
	return rules, nil
}

// parseStringList parses an optional list of strings.
func parseStringList(v cue.Value, field string) ([]string, error) {
	if !v.Exists() {
		return nil, nil
	}
	iter, err := v.List()
	if err != nil {
		return nil, &CompileError{Field: field, Message: fmt.Sprintf("must be a list of strings: %v", err), Pos: v.Pos()}
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
