// Package i18n carries the bilingual (English/Arabic) text layer: the
// key→string tables the UI renders from, Accept-Language resolution, and the
// process-wide language switch.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const (
	LangEN = "en"
	LangAR = "ar"
)

//go:embed locales
var localeFS embed.FS

// Text is one translatable element: the primary English text plus its Arabic
// alternative.
type Text struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In resolves the pair for a language tag. Unknown tags fall back to English.
func (t Text) In(lang string) string {
	if lang == LangAR {
		return t.Ar
	}
	return t.En
}

// Bundle holds the per-locale dictionaries loaded from the embedded files.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
}

// Load reads locales/en.json and locales/ar.json. English is the fallback
// and must be present.
func Load() (*Bundle, error) {
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  LangEN,
		supported: map[string]struct{}{},
	}
	for _, l := range []string{LangEN, LangAR} {
		b.supported[l] = struct{}{}
		raw, err := localeFS.ReadFile("locales/" + l + ".json")
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal locale %s: %w", l, err)
		}
		b.dict[l] = m
	}
	return b, nil
}

func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (b *Bundle) isSupported(lang string) bool {
	_, ok := b.supported[lang]
	return ok
}

// T returns the translation for key in lang, falling back to English and
// finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}
	return key
}

// Table copies the full key→string table for lang so a client can re-render
// every labelled element after a language change.
func (b *Bundle) Table(lang string) map[string]string {
	src, ok := b.dict[lang]
	if !ok {
		src = b.dict[b.fallback]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Resolve chooses the best supported language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	type langPref struct {
		base string
		q    float64
		pos  int
	}
	prefs := make([]langPref, 0, 8)
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			params := strings.TrimSpace(p[sc+1:])
			p = strings.TrimSpace(p[:sc])
			if strings.HasPrefix(params, "q=") {
				if v, err := strconv.ParseFloat(strings.TrimPrefix(params, "q="), 64); err == nil {
					if v < 0 {
						v = 0
					} else if v > 1 {
						v = 1
					}
					q = v
				}
			}
		}
		base := p
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			base = p[:dash]
		}
		prefs = append(prefs, langPref{base: strings.ToLower(base), q: q, pos: i})
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	for _, lp := range prefs {
		if b.isSupported(lp.base) {
			return lp.base
		}
	}
	return b.fallback
}

// Switcher is the process-wide display language, default English. Toggling
// flips between en and ar; rendering reads the current value at render time,
// so a toggle followed by a re-render swaps every translatable element.
type Switcher struct {
	mu   sync.Mutex
	lang string
}

func NewSwitcher() *Switcher {
	return &Switcher{lang: LangEN}
}

func (s *Switcher) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Toggle flips the language and returns the new value.
func (s *Switcher) Toggle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lang == LangEN {
		s.lang = LangAR
	} else {
		s.lang = LangEN
	}
	return s.lang
}
