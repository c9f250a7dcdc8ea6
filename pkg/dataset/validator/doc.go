// Package validator implements the rule engine at the core of turnlint.
//
// ConversationValidator handles the document as a whole: root shape,
// turn-count bounds, per-element object checks, and the turn_id sequence
// check. TurnValidator applies an ordered registry of independent per-turn
// rules covering required fields, speaker-conditional content, field types,
// value ranges, content length bounds, the tool triplet, and (in strict
// mode) unknown-field warnings.
//
// Error collection is exhaustive: a failing rule never stops the pass, and
// an invalid turn never prevents validation of later turns. Custom rules
// are added by registering a Rule func, not by wrapping or embedding the
// validator:
//
//	v := validator.New()
//	v.Turns().Register(func(c *validator.Context) {
//	    // inspect c.Turn, call c.Add / c.Warnf
//	})
//	result := v.Validate(data, cfg)
package validator
