package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/state"
)

const (
	examFailure     = "An error occurred while generating the exam task. Try again."
	examCheckFailed = "An error occurred while evaluating your answer. Please try again."
)

func (c *Controller) startExam(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	if a.empty() {
		st.Clear()
		return core.Reply{}, &ValidationError{Usage: examUsage}
	}
	skill, ok := state.ParseSkill(a.next())
	if !ok {
		st.Clear()
		return core.Reply{}, &ValidationError{Usage: examInvalidSkill}
	}

	session := &state.Exam{Skill: skill}
	st.Reset(session)

	d := c.draw()
	p, err := c.render("exam.task."+string(skill), prompt.Vars{WritingType: d.WritingType})
	if err != nil {
		return core.Reply{}, err
	}
	task, err := c.complete(ctx, p.Messages(), p.Params, "exam task", examFailure)
	if err != nil {
		return core.Reply{}, err
	}
	session.Task = task

	return core.Reply{Text: fmt.Sprintf(examTask, capitalize(string(skill)), task)}, nil
}

func (c *Controller) checkExam(ctx context.Context, st *state.State, s *state.Exam, text string) (core.Reply, error) {
	defer st.Clear()

	if s.Task == "" || s.Skill == "" {
		return core.Reply{}, &LostContextError{Mode: state.ModeExam, Notice: examLost}
	}

	p, err := c.render("exam.review."+string(s.Skill), prompt.Vars{Task: s.Task, Answer: text})
	if err != nil {
		return core.Reply{}, err
	}
	feedback, err := c.complete(ctx, p.Messages(), p.Params, "exam review", examCheckFailed)
	if err != nil {
		return core.Reply{}, err
	}
	return core.Reply{Text: fmt.Sprintf(examFeedback, s.Skill, feedback)}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
