package main

import (
	"context"
	"io"
	"testing"

	"easyshop_service/config"
	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	c := corsConfig(&config.Config{CORSOrigins: "*"})
	assert.True(t, c.AllowAllOrigins)
	assert.False(t, c.AllowCredentials)
	assert.NoError(t, c.Validate())

	c = corsConfig(&config.Config{CORSOrigins: "http://localhost:3000"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowOrigins)
	assert.NoError(t, c.Validate())
}

type stubAuth struct {
	calls int
	role  string
	err   error
}

func (s *stubAuth) Register(_ context.Context, _, _, _, role string) (*domain.User, error) {
	s.calls++
	s.role = role
	return &domain.User{}, s.err
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.AuthResponse, error) {
	return nil, nil
}

func TestSeedAdmin(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	uc := &stubAuth{}
	seedAdmin(uc, &config.Config{}, logger)
	assert.Zero(t, uc.calls)

	uc = &stubAuth{err: domain.ErrConflict}
	seedAdmin(uc, &config.Config{AdminUsername: "root", AdminPassword: "Secret123"}, logger)
	assert.Equal(t, 1, uc.calls)
	assert.Equal(t, domain.RoleAdmin, uc.role)
}
