package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/sandevgo/taalbot/internal/core"
)

//go:embed prompts.yaml
var defaultBook []byte

// Vars are the values a template may reference. Unused fields stay empty.
type Vars struct {
	Level       string
	Style       string
	Topic       string
	Words       []string
	Letter      string
	SubMode     string
	Item        string
	Original    string
	Answer      string
	Task        string
	WritingType string
	NumberTopic string
	Date        string
	Term        string
	Query       string
}

// Prompt is a rendered template ready to be sent to a model.
type Prompt struct {
	System string
	User   string
	Params core.Params
}

// Messages returns the system and user turns that are not empty.
func (p Prompt) Messages() []core.Message {
	msgs := make([]core.Message, 0, 2)
	if p.System != "" {
		msgs = append(msgs, core.Message{Role: core.RoleSystem, Content: p.System})
	}
	if p.User != "" {
		msgs = append(msgs, core.Message{Role: core.RoleUser, Content: p.User})
	}
	return msgs
}

type paramsSpec struct {
	Tier             string   `yaml:"tier"`
	MaxTokens        int      `yaml:"max_tokens"`
	Temperature      *float64 `yaml:"temperature"`
	TopP             *float64 `yaml:"top_p"`
	PresencePenalty  *float64 `yaml:"presence_penalty"`
	FrequencyPenalty *float64 `yaml:"frequency_penalty"`
}

type templateSpec struct {
	System string     `yaml:"system"`
	User   string     `yaml:"user"`
	Params paramsSpec `yaml:"params"`
}

type bookFile struct {
	Voices       []string                `yaml:"voices"`
	NumberTopics []string                `yaml:"number_topics"`
	WritingTypes []string                `yaml:"writing_types"`
	Prompts      map[string]templateSpec `yaml:"prompts"`
}

type entry struct {
	system *template.Template
	user   *template.Template
	params core.Params
}

// Book holds every prompt the tutor sends, keyed by name such as "translation.A".
type Book struct {
	Voices       []string
	NumberTopics []string
	WritingTypes []string

	entries map[string]entry
}

var funcs = template.FuncMap{
	"lower":  strings.ToLower,
	"quoted": quoted,
}

func quoted(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = "'" + w + "'"
	}
	return strings.Join(parts, ", ")
}

// Default parses the embedded prompt book.
func Default() (*Book, error) {
	return Parse(defaultBook)
}

func Parse(data []byte) (*Book, error) {
	var raw bookFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompt book: %w", err)
	}

	b := &Book{
		Voices:       raw.Voices,
		NumberTopics: raw.NumberTopics,
		WritingTypes: raw.WritingTypes,
		entries:      make(map[string]entry, len(raw.Prompts)),
	}

	for name, t := range raw.Prompts {
		var e entry
		var err error
		if e.system, err = compile(name+".system", t.System); err != nil {
			return nil, err
		}
		if e.user, err = compile(name+".user", t.User); err != nil {
			return nil, err
		}
		e.params = core.Params{
			Tier:             core.Tier(t.Params.Tier),
			MaxTokens:        t.Params.MaxTokens,
			Temperature:      t.Params.Temperature,
			TopP:             t.Params.TopP,
			PresencePenalty:  t.Params.PresencePenalty,
			FrequencyPenalty: t.Params.FrequencyPenalty,
		}
		if e.params.Tier == "" {
			e.params.Tier = core.TierChat
		}
		b.entries[name] = e
	}

	if len(b.Voices) == 0 {
		return nil, fmt.Errorf("prompt book has no voices")
	}
	return b, nil
}

func compile(name, text string) (*template.Template, error) {
	if text == "" {
		return nil, nil
	}
	t, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("failed to compile prompt %s: %w", name, err)
	}
	return t, nil
}

func (b *Book) Has(name string) bool {
	_, ok := b.entries[name]
	return ok
}

// Render executes the named template with vars.
func (b *Book) Render(name string, vars Vars) (Prompt, error) {
	e, ok := b.entries[name]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt %q", name)
	}

	p := Prompt{Params: e.params}
	var err error
	if p.System, err = execute(e.system, vars); err != nil {
		return Prompt{}, fmt.Errorf("failed to render %s: %w", name, err)
	}
	if p.User, err = execute(e.user, vars); err != nil {
		return Prompt{}, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return p, nil
}

func execute(t *template.Template, vars Vars) (string, error) {
	if t == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", err
	}
	return buf.String(), nil
}
