// Package content holds the marketing copy rendered around the project catalog.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

//go:embed site.yaml
var siteYAML []byte

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Desc  string `yaml:"desc,omitempty"`
}

type Slide struct {
	Track    domain.ProjectType `yaml:"track"`
	Image    string             `yaml:"image"`
	Alt      string             `yaml:"alt"`
	Kicker   string             `yaml:"kicker"`
	Title    string             `yaml:"title"`
	Subtitle string             `yaml:"subtitle"`
}

type Logo struct {
	Name  string             `yaml:"name"`
	Image string             `yaml:"image"`
	Track domain.ProjectType `yaml:"track,omitempty"`
}

// Card is the generic tile used by most sections.
type Card struct {
	Title    string             `yaml:"title"`
	Subtitle string             `yaml:"subtitle,omitempty"`
	Desc     string             `yaml:"desc,omitempty"`
	Tag      string             `yaml:"tag,omitempty"`
	Image    string             `yaml:"image,omitempty"`
	Href     string             `yaml:"href,omitempty"`
	Track    domain.ProjectType `yaml:"track,omitempty"`
	Points   []string           `yaml:"points,omitempty"`
}

type Stat struct {
	Value string `yaml:"value"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc,omitempty"`
}

// Section is a headed block of copy with optional cards and highlight pills.
type Section struct {
	Kicker     string   `yaml:"kicker,omitempty"`
	Title      string   `yaml:"title"`
	Highlight  string   `yaml:"highlight,omitempty"`
	Subtitle   string   `yaml:"subtitle,omitempty"`
	Body       []string `yaml:"body,omitempty"`
	Image      string   `yaml:"image,omitempty"`
	Items      []Card   `yaml:"items,omitempty"`
	Stats      []Stat   `yaml:"stats,omitempty"`
	Highlights []string `yaml:"highlights,omitempty"`
	CTAs       []Link   `yaml:"ctas,omitempty"`
	Note       string   `yaml:"note,omitempty"`
}

type Testimonial struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Quote  string `yaml:"quote"`
	Rating int    `yaml:"rating"`
	Avatar string `yaml:"avatar"`
}

type Company struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Region  string `yaml:"region"`
}

type Footer struct {
	About    string   `yaml:"about"`
	Tagline  string   `yaml:"tagline"`
	Links    []Link   `yaml:"links"`
	Services []string `yaml:"services"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	CTAs     []Link   `yaml:"ctas"`
	Credit   Link     `yaml:"credit"`
}

type Home struct {
	Slides       []Slide                        `yaml:"slides"`
	Brands       Section                        `yaml:"brands"`
	BrandLogos   []Logo                         `yaml:"brand_logos"`
	MiniAbout    map[domain.ProjectType]Section `yaml:"mini_about"`
	Services     Section                        `yaml:"services"`
	Showcase     Section                        `yaml:"showcase"`
	WhoWeServe   Section                        `yaml:"who_we_serve"`
	GreenEnergy  Section                        `yaml:"green_energy"`
	Clients      Section                        `yaml:"clients"`
	ClientLogos  []Logo                         `yaml:"client_logos"`
	Testimonials []Testimonial                  `yaml:"testimonials"`
	Positioning  Section                        `yaml:"positioning"`
}

type About struct {
	Hero          Section                        `yaml:"hero"`
	Intro         Section                        `yaml:"intro"`
	CoreIdentity  Section                        `yaml:"core_identity"`
	WhatWeDo      map[domain.ProjectType]Section `yaml:"what_we_do"`
	Approach      Section                        `yaml:"approach"`
	Manufacturing Section                        `yaml:"manufacturing"`
	WhyUs         Section                        `yaml:"why_us"`
	Mission       Section                        `yaml:"mission"`
	Vision        Section                        `yaml:"vision"`
	Values        Section                        `yaml:"values"`
	Aim           Section                        `yaml:"aim"`
}

type Solar struct {
	Hero    Section `yaml:"hero"`
	Intro   Section `yaml:"intro"`
	Deliver Section `yaml:"deliver"`
	WhyUs   Section `yaml:"why_us"`
}

type Contact struct {
	Hero    Section `yaml:"hero"`
	Intro   Section `yaml:"intro"`
	Cards   []Card  `yaml:"cards"`
	Success string  `yaml:"success"`
}

// TrackSection introduces one track on the projects page.
type TrackSection struct {
	Section  `yaml:",inline"`
	Featured int `yaml:"featured"`
}

type Projects struct {
	Hero   Section                             `yaml:"hero"`
	Tracks map[domain.ProjectType]TrackSection `yaml:"tracks"`
	CTA    Section                             `yaml:"cta"`
}

// Site is the whole content tree.
type Site struct {
	Company   Company  `yaml:"company"`
	Nav       []Link   `yaml:"nav"`
	Solutions []Link   `yaml:"solutions"`
	Footer    Footer   `yaml:"footer"`
	Home      Home     `yaml:"home"`
	About     About    `yaml:"about"`
	Solar     Solar    `yaml:"solar"`
	Contact   Contact  `yaml:"contact"`
	Projects  Projects `yaml:"projects"`
}

var (
	defaultOnce sync.Once
	defaultSite *Site
)

// Default returns the embedded site content. It panics if the embedded
// document is malformed, which the package tests guard against.
func Default() *Site {
	defaultOnce.Do(func() {
		s, err := Load(bytes.NewReader(siteYAML))
		if err != nil {
			panic(fmt.Sprintf("content: embedded site.yaml: %v", err))
		}
		defaultSite = s
	})
	return defaultSite
}

// Load decodes a site document and checks every track has its sections.
func Load(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Site
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty site document")
		}
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) check() error {
	for _, t := range domain.Types {
		if _, ok := s.Home.MiniAbout[t]; !ok {
			return fmt.Errorf("home.mini_about missing track %q", t)
		}
		if _, ok := s.About.WhatWeDo[t]; !ok {
			return fmt.Errorf("about.what_we_do missing track %q", t)
		}
		if _, ok := s.Projects.Tracks[t]; !ok {
			return fmt.Errorf("projects.tracks missing track %q", t)
		}
	}
	return nil
}
