package classify

import (
	"strings"

	"krokindex/internal/textutil"
)

// Name is the input every rule inspects: the raw name as found on disk or in
// the listing, and its canonical upper-cased title.
type Name struct {
	Raw   string
	Upper string
}

// NewName builds a rule input from a raw name.
func NewName(raw string) Name {
	return Name{Raw: raw, Upper: textutil.Upper(textutil.Clean(raw))}
}

// Rule pairs a predicate with the label it assigns.
type Rule struct {
	Name  string
	Match func(Name) bool
	Label string
}

// RuleSet is an ordered rule table with a fallback label.
type RuleSet struct {
	Rules    []Rule
	Fallback string
}

// Classify returns the label of the first matching rule, or the fallback.
func (s RuleSet) Classify(name Name) string {
	label, _ := s.Explain(name)
	return label
}

// Explain returns the assigned label and the name of the rule that produced
// it ("fallback" when nothing matched).
func (s RuleSet) Explain(name Name) (string, string) {
	for _, rule := range s.Rules {
		if rule.Match(name) {
			return rule.Label, rule.Name
		}
	}
	return s.Fallback, "fallback"
}

func rawContains(marker string) func(Name) bool {
	return func(n Name) bool { return strings.Contains(n.Raw, marker) }
}

func upperContains(marker string) func(Name) bool {
	return func(n Name) bool { return strings.Contains(n.Upper, marker) }
}

func rawEquals(value string) func(Name) bool {
	return func(n Name) bool { return n.Raw == value }
}

// RemoteExamType assigns exam_type to remote listing entries. Program codes
// outrank the English marker.
var RemoteExamType = RuleSet{
	Rules: []Rule{
		{Name: "amps", Match: rawContains("АМПС"), Label: ExamAMPS},
		{Name: "edki", Match: rawContains("ЄДКІ"), Label: ExamEDKI},
		{Name: "english", Match: upperContains("(EN)"), Label: ExamKrokEnglish},
	},
	Fallback: ExamKrokUkrainian,
}

// RemoteLevel assigns level to remote listing entries. The ЄДКІ programme
// markers outrank the КРОК stage, which is matched on the canonical title so
// Latin spellings such as "KROK 1" count.
var RemoteLevel = RuleSet{
	Rules: []Rule{
		{Name: "professional", Match: rawContains("Фахова"), Label: LevelProfessional},
		{Name: "bachelors", Match: rawContains("Бакалаври"), Label: LevelBachelors},
		{Name: "krok-1", Match: upperContains(LevelKrok1), Label: LevelKrok1},
		{Name: "krok-2", Match: upperContains(LevelKrok2), Label: LevelKrok2},
		{Name: "krok-3", Match: upperContains(LevelKrok3), Label: LevelKrok3},
	},
	Fallback: LevelOther,
}

// RegularLanguage maps the language branch directory of the regular bases
// tree to an exam_type label.
var RegularLanguage = RuleSet{
	Rules: []Rule{
		{Name: "english", Match: rawEquals("English"), Label: ExamKrokEnglish},
		{Name: "moscow", Match: rawEquals("Московська"), Label: ExamMoscow},
	},
	Fallback: ExamKrokUkrainian,
}

// RegularExamType returns ЄДКІ when the level names that programme and the
// language label otherwise.
func RegularExamType(level, language string) string {
	if strings.Contains(level, ExamEDKI) {
		return ExamEDKI
	}
	return language
}
