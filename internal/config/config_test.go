package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("EMAIL_PORT", "")
	t.Setenv("RESET_DB", "")

	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, "Outlaw Surveys", cfg.Mail.FromName)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EMAIL_PORT", "587")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("RESET_DB", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.ResetDB)
}

func TestMailConfig_MaskedPassword(t *testing.T) {
	assert.Equal(t, "not set", MailConfig{}.MaskedPassword())
	assert.Equal(t, "****", MailConfig{AppPassword: "abc"}.MaskedPassword())
	assert.Equal(t, "****wxyz", MailConfig{AppPassword: "abcdwxyz"}.MaskedPassword())
}
