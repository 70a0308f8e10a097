package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token    string        `env:"TELEGRAM_TOKEN,required,notEmpty"`
	Users    []int64       `env:"AUTHORIZED_USERS" envSeparator:","`
	Backend  string        `env:"RECENCY_BACKEND"`
	TTL      time.Duration `env:"SESSION_TTL"`
	Telegram bool          `env:"ENABLE_TELEGRAM"`
	Empty    string        `env:"UNSET"`
	Note     string        `env:"NOTE"`
	internal string        `env:"HIDDEN"`
	NoTag    string
}

func TestMarshalEnv(t *testing.T) {
	s := &sample{
		Token:    "123:abc",
		Users:    []int64{101, 202},
		Backend:  "badger",
		TTL:      90 * time.Minute,
		Telegram: true,
		Note:     "two words",
		internal: "x",
		NoTag:    "y",
	}

	got, err := MarshalEnv(s)
	require.NoError(t, err)

	want := "TELEGRAM_TOKEN=123:abc\n" +
		"AUTHORIZED_USERS=101,202\n" +
		"RECENCY_BACKEND=badger\n" +
		"SESSION_TTL=1h30m0s\n" +
		"ENABLE_TELEGRAM=true\n" +
		"NOTE=\"two words\"\n"
	assert.Equal(t, want, got)
}

func TestMarshalEnv_AllZero(t *testing.T) {
	got, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarshalEnv_RejectsNonPointer(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)
}
