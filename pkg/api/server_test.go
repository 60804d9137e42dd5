package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

func TestListenAddrUsesConfiguredPort(t *testing.T) {
	s := &Server{cfg: &config.Config{HTTPPort: "8080"}}
	assert.Equal(t, ":8080", s.listenAddr())
}
