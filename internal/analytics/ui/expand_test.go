package ui

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandToggleCollapsesOpenRow(t *testing.T) {
	state := ParseExpand(url.Values{"expand": {"c1"}, "sector": {"Fintech"}})
	assert.Equal(t, "c1", state.ID())
	assert.True(t, state.IsOpen("c1"))
	assert.False(t, state.IsOpen("c2"))

	assert.Equal(t, "", state.Toggle("c1").ID())
	assert.Equal(t, "c2", state.Toggle("c2").ID())
	assert.False(t, ExpandState{}.IsOpen(""))
}

func TestExpandLinkKeepsFilters(t *testing.T) {
	state := ParseExpand(url.Values{"expand": {"c1"}, "sector": {"Fintech"}})

	assert.Equal(t, "/?sector=Fintech", state.Link("/", "c1"))
	assert.Equal(t, "/?expand=c2&sector=Fintech", state.Link("/", "c2"))
	assert.Equal(t, "/partner-roi?expand=p1", ParseExpand(url.Values{}).Link("/partner-roi", "p1"))
	assert.Equal(t, "/", ParseExpand(url.Values{"expand": {"x"}}).Link("/", "x"))
}
