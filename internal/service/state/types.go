package state

import "strings"

// Mode identifies how free text from a user is interpreted.
type Mode string

const (
	ModeIdle        Mode = "idle"
	ModeChat        Mode = "chat"
	ModeRoleplay    Mode = "roleplay"
	ModeTranslation Mode = "translation"
	ModePractice    Mode = "practice"
	ModeExam        Mode = "exam"
	ModeDictate     Mode = "dictate"
	ModeWord        Mode = "word"
	ModeExplain     Mode = "explain"
	ModeReading     Mode = "reading"
)

// Level is a CEFR band. LevelNumbers is only valid for dictation.
type Level string

const (
	LevelA1      Level = "A1"
	LevelA2      Level = "A2"
	LevelB1      Level = "B1"
	LevelB2      Level = "B2"
	LevelC1      Level = "C1"
	LevelC2      Level = "C2"
	LevelNumbers Level = "N"
)

var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseLevel matches s case-insensitively against the CEFR bands.
func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels {
		if strings.EqualFold(s, string(l)) {
			return l, true
		}
	}
	return "", false
}

// Style selects the flavour of a translation text.
type Style string

const (
	StyleAlice    Style = "A"
	StyleNabokov  Style = "N"
	StyleFantasy  Style = "F"
	StyleTravel   Style = "T"
	StyleLearning Style = "L"
)

var Styles = []Style{StyleAlice, StyleNabokov, StyleFantasy, StyleTravel, StyleLearning}

func ParseStyle(s string) (Style, bool) {
	for _, st := range Styles {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// SubMode is the grammar focus of a practice session.
type SubMode string

const (
	SubModePrep SubMode = "prep"
	SubModeVerb SubMode = "verb"
	SubModeWord SubMode = "word"
)

var SubModes = []SubMode{SubModePrep, SubModeVerb, SubModeWord}

func ParseSubMode(s string) (SubMode, bool) {
	for _, m := range SubModes {
		if strings.EqualFold(s, string(m)) {
			return m, true
		}
	}
	return "", false
}

// Skill is one of the NT2 exam parts.
type Skill string

const (
	SkillReading  Skill = "reading"
	SkillWriting  Skill = "writing"
	SkillSpeaking Skill = "speaking"
	SkillCulture  Skill = "culture"
)

var Skills = []Skill{SkillReading, SkillWriting, SkillSpeaking, SkillCulture}

func ParseSkill(s string) (Skill, bool) {
	for _, sk := range Skills {
		if strings.EqualFold(s, string(sk)) {
			return sk, true
		}
	}
	return "", false
}
