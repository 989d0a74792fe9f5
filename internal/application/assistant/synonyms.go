package assistant

import (
	"sort"
	"strings"
)

// Canonical product types. Free text resolves to exactly one of these or
// to nothing at all; no guessing.
const (
	CanonMatera  = "matera"
	CanonJarron  = "jarron"
	CanonPocillo = "pocillo"
	CanonPlato   = "plato"
	CanonSet     = "set"
)

// canonSynonyms maps each canonical type to the surface forms that may
// appear in user text. Multi-word entries are matched as phrases.
var canonSynonyms = map[string][]string{
	CanonMatera: {
		"matera", "materas", "maceta", "macetas", "matero", "tiesto",
		"florero para plantar", "lugar para colocar plantas", "para plantar",
		"para plantas", "jardinera",
	},
	CanonJarron: {
		"jarron", "jarrones", "jarra", "jarras", "vasija", "florero",
		"utensilio para echar agua", "donde echar agua", "echar agua",
		"jarron con flores", "adorno alto",
	},
	CanonPocillo: {
		"pocillo", "pocillos", "taza", "tazas", "tacita", "tacitas",
		"mug", "mugs", "donde beber agua", "para beber", "para cafe", "para te",
		"vaso pequeno", "vaso", "vasos",
	},
	CanonPlato: {
		"plato", "platos", "platon", "platones",
		"fuente", "fuentes", "bandeja", "bandejas",
		"bandeja ceramica", "bajo plato", "bajo platos", "bandeja para servir",
	},
	CanonSet: {
		"set", "sets", "juego", "juegos", "kit", "conjunto", "juego de",
	},
}

// wordToCanon maps single-word synonyms to their canonical type
var wordToCanon = map[string]string{}

// phraseSynonym is a multi-word synonym and its canonical type
type phraseSynonym struct {
	phrase string
	canon  string
}

// phrases holds multi-word synonyms, longest first so "bandeja ceramica"
// wins over "bandeja".
var phrases []phraseSynonym

func init() {
	for canon, words := range canonSynonyms {
		for _, w := range words {
			n := Normalize(w)
			if n == "" {
				continue
			}
			if strings.Contains(n, " ") {
				phrases = append(phrases, phraseSynonym{phrase: n, canon: canon})
			} else {
				wordToCanon[n] = canon
			}
		}
	}
	sort.Slice(phrases, func(i, j int) bool {
		return len(phrases[i].phrase) > len(phrases[j].phrase)
	})
}

// ResolveCanon returns the canonical type named earliest in the text.
// Phrases are checked before single tokens. Empty string means no match.
func ResolveCanon(text string) string {
	nt := Normalize(text)
	if nt == "" {
		return ""
	}

	earliestPos := len(nt) + 1
	earliestCanon := ""
	for _, p := range phrases {
		if pos := strings.Index(nt, p.phrase); pos != -1 && pos < earliestPos {
			earliestPos = pos
			earliestCanon = p.canon
		}
	}
	if earliestCanon != "" {
		return earliestCanon
	}

	for _, tok := range Tokenize(text) {
		if canon, ok := wordToCanon[tok]; ok {
			return canon
		}
	}
	return ""
}

// SynonymsFor returns the normalized synonym list of a canonical type,
// including the type itself.
func SynonymsFor(canon string) []string {
	words, ok := canonSynonyms[canon]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(words)+1)
	out = append(out, canon)
	seen := map[string]bool{canon: true}
	for _, w := range words {
		n := Normalize(w)
		if n != "" && !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	return out
}
