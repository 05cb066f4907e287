// Package packs compiles external pool packs authored in CUE.
//
// A pack file declares pools under the top-level "pool" struct:
//
//	pool: affirm: {
//		prefix: "A"
//		items: [
//			{id: "A001", text: "You've got this.", tags: ["calm"]},
//		]
//		expand: [
//			{template: "Be as steady as a %s.", values: ["rock", "oak"], tags: ["calm"]},
//		]
//	}
//
// Compiled packs run through the same deterministic expansion as the
// built-in pools and register into the quest registry at startup.
// Built-in pool names (proof, quest, note) can never be shadowed.
//
// Compilation uses the CUE SDK's Go API directly (not a CLI
// subprocess), and every error carries source position information so
// authors can jump straight to the offending line.
package packs
