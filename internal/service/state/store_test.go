package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sandevgo/taalbot/internal/core"
)

func TestHistory_TrimKeepsSystemAndNewest(t *testing.T) {
	h := NewHistory("je bent een docent")
	for i := 0; i < 25; i++ {
		h = h.Append(core.RoleUser, string(rune('a'+i)))
		h = h.Trim(10)

		require.LessOrEqual(t, len(h), 10)
		assert.Equal(t, core.RoleSystem, h[0].Role)
		assert.Equal(t, "je bent een docent", h[0].Content)
	}
	assert.Equal(t, "y", h[len(h)-1].Content)
	assert.Equal(t, "q", h[1].Content)
}

func TestHistory_TrimShortHistoryIsUntouched(t *testing.T) {
	h := NewHistory("sys").Append(core.RoleUser, "hoi")
	assert.Equal(t, h, h.Trim(10))
}

func TestHistory_MessagesIsACopy(t *testing.T) {
	h := NewHistory("sys")
	msgs := append(h.Messages(), core.Message{Role: core.RoleUser, Content: "extra"})
	assert.Len(t, h, 1)
	assert.Len(t, msgs, 2)
}

func TestState_ResetDiscardsPreviousFields(t *testing.T) {
	st := &State{Session: &Practice{Level: LevelB1, SubMode: SubModeVerb, Item: "gaan"}}

	st.Reset(&Translation{Level: LevelA2})

	tr, ok := st.Session.(*Translation)
	require.True(t, ok)
	assert.Equal(t, ModeTranslation, st.Mode())
	assert.Equal(t, &Translation{Level: LevelA2}, tr)

	st.Clear()
	assert.Equal(t, ModeIdle, st.Mode())
}

func TestParsers(t *testing.T) {
	l, ok := ParseLevel("b2")
	assert.True(t, ok)
	assert.Equal(t, LevelB2, l)

	_, ok = ParseLevel("A9")
	assert.False(t, ok)

	_, ok = ParseLevel("N")
	assert.False(t, ok)

	st, ok := ParseStyle("f")
	assert.True(t, ok)
	assert.Equal(t, StyleFantasy, st)

	sm, ok := ParseSubMode("VERB")
	assert.True(t, ok)
	assert.Equal(t, SubModeVerb, sm)

	sk, ok := ParseSkill("Culture")
	assert.True(t, ok)
	assert.Equal(t, SkillCulture, sk)
}

func TestStore_AcquireIsolatesUsers(t *testing.T) {
	s := NewStore(time.Hour)

	a, releaseA := s.Acquire(1)
	a.Reset(&Chat{History: NewHistory("sys")})
	releaseA()

	b, releaseB := s.Acquire(2)
	assert.Equal(t, ModeIdle, b.Mode())
	releaseB()

	assert.Equal(t, ModeChat, s.Peek(1))
	assert.Equal(t, ModeIdle, s.Peek(3))
	assert.Equal(t, 2, s.Len())
}

func TestStore_AcquireSerialisesSameUser(t *testing.T) {
	s := NewStore(time.Hour)

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, release := s.Acquire(42)
			defer release()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestStore_EvictSkipsBusyAndFresh(t *testing.T) {
	s := NewStore(time.Minute)
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	_, release := s.Acquire(1)
	release()
	_, hold := s.Acquire(2)
	defer hold()

	assert.Equal(t, 0, s.Evict(base.Add(30*time.Second)))
	assert.Equal(t, 1, s.Evict(base.Add(2*time.Minute)))
	assert.Equal(t, 1, s.Len())
}

func TestJanitor_StopsOnShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewStore(time.Nanosecond)
	_, release := s.Acquire(7)
	release()

	j := NewJanitor(s, time.Millisecond)
	done := make(chan struct{})
	go func() {
		_ = j.Start(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, time.Millisecond)
	require.NoError(t, j.Shutdown(context.Background()))
	<-done
}
