package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShayCichocki/oulab/internal/i18n"
)

func TestLayoutManager_Calculate(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		wantMain    int
		wantSide    int
		wantStacked bool
	}{
		{name: "wide", width: 150, height: 50, wantMain: 100, wantSide: 50},
		{name: "at breakpoint", width: 100, height: 50, wantMain: 66, wantSide: 34},
		{name: "narrow stacks", width: 80, height: 24, wantMain: 80, wantSide: 80, wantStacked: true},
		{name: "tiny", width: 10, height: 5, wantMain: 30, wantSide: 30, wantStacked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayoutManager(tt.width, tt.height)
			dims := l.Calculate()
			assert.Equal(t, tt.wantMain, dims.MainWidth)
			assert.Equal(t, tt.wantSide, dims.SideWidth)
			assert.Equal(t, tt.wantStacked, dims.Stacked)
			assert.GreaterOrEqual(t, dims.ContentHeight, 1)
		})
	}
}

func TestBusColumn(t *testing.T) {
	assert.Equal(t, 0, busColumn(0, 11, i18n.LTR))
	assert.Equal(t, 10, busColumn(100, 11, i18n.LTR))
	assert.Equal(t, 5, busColumn(50, 11, i18n.LTR))
	assert.Equal(t, 10, busColumn(0, 11, i18n.RTL))
	assert.Equal(t, 0, busColumn(100, 11, i18n.RTL))
	assert.Equal(t, 10, busColumn(250, 11, i18n.LTR))
}

func TestLanguageTabs(t *testing.T) {
	tabs := NewLanguageTabs()
	assert.Equal(t, i18n.English, tabs.Active())

	tabs.SetActive(i18n.Arabic)
	assert.Equal(t, i18n.Arabic, tabs.Active())

	tabs.SetActive("fr")
	assert.Equal(t, i18n.Arabic, tabs.Active())

	view := tabs.View()
	assert.Contains(t, view, "EN")
	assert.Contains(t, view, "AR")
}

func TestSpread_MirrorsInRTL(t *testing.T) {
	assert.Equal(t, "a   b", spread("a", "b", 5, i18n.LTR))
	assert.Equal(t, "b   a", spread("a", "b", 5, i18n.RTL))
	assert.Equal(t, "ab cd", spread("ab", "cd", 2, i18n.LTR))
}

func TestPercentText(t *testing.T) {
	assert.Equal(t, "72%", percentText(72))
	assert.Equal(t, "73%", percentText(72.6))
	assert.Equal(t, "0%", percentText(0))
}
