package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NotNil(t, s)

	assert.Equal(t, "VR GreenTek Energy", s.Company.Name)
	assert.Len(t, s.Nav, 5)
	assert.Len(t, s.Solutions, 5)
	assert.Len(t, s.Home.Slides, 6)
	assert.Len(t, s.Home.Testimonials, 7)
	assert.Len(t, s.Home.WhoWeServe.Items, 4)

	for _, tr := range domain.Types {
		assert.Len(t, s.Home.ServicesFor(tr), 4, tr)
		assert.Len(t, s.Home.ClientsFor(tr), 3, tr)
		assert.NotEmpty(t, s.Home.MiniAboutFor(tr).Title, tr)
		assert.Len(t, s.About.WhatWeDoFor(tr).Items, 5, tr)
		assert.Positive(t, s.Projects.Track(tr).Featured, tr)
	}
}

func TestSlidesAreGreenFirst(t *testing.T) {
	slides := Default().Home.Slides
	assert.Equal(t, domain.TypeGreenEnergy, slides[0].Track)
	assert.Equal(t, domain.TypeElectrical, slides[len(slides)-1].Track)
}

func TestTrackOrDefault(t *testing.T) {
	assert.Equal(t, domain.TypeElectrical, TrackOrDefault("electrical"))
	assert.Equal(t, domain.TypeGreenEnergy, TrackOrDefault(""))
	assert.Equal(t, domain.TypeGreenEnergy, TrackOrDefault("wind"))
}

func TestLoad(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := Load(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader("company:\n  name: x\n  fax: y\n"))
		assert.Error(t, err)
	})

	t.Run("missing track sections", func(t *testing.T) {
		_, err := Load(strings.NewReader("company:\n  name: x\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mini_about")
	})
}
