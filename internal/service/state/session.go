package state

// Session is the mode-specific part of a user's state. Exactly one variant is
// active at a time; switching modes replaces the whole value.
type Session interface {
	Mode() Mode
}

type Idle struct{}

type Chat struct {
	History History
}

type Roleplay struct {
	Topic   string
	History History
}

type Translation struct {
	Level     Level
	Style     Style
	Topic     string
	Reference string
}

type Practice struct {
	Level     Level
	SubMode   SubMode
	Item      string
	Sentences string
	History   History
}

type Exam struct {
	Skill Skill
	Task  string
}

type Dictate struct {
	Level     Level
	Reference string
}

type Word struct {
	Term string
}

type Explain struct {
	Query string
}

type Reading struct {
	Level Level
	Topic string
	Text  string
}

func (Idle) Mode() Mode         { return ModeIdle }
func (*Chat) Mode() Mode        { return ModeChat }
func (*Roleplay) Mode() Mode    { return ModeRoleplay }
func (*Translation) Mode() Mode { return ModeTranslation }
func (*Practice) Mode() Mode    { return ModePractice }
func (*Exam) Mode() Mode        { return ModeExam }
func (*Dictate) Mode() Mode     { return ModeDictate }
func (*Word) Mode() Mode        { return ModeWord }
func (*Explain) Mode() Mode     { return ModeExplain }
func (*Reading) Mode() Mode     { return ModeReading }
