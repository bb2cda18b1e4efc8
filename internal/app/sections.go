package app

import (
	"github.com/vk/landinggo/internal/registry"
	"github.com/vk/landinggo/sections/contact"
	"github.com/vk/landinggo/sections/features"
	"github.com/vk/landinggo/sections/hero"
	"github.com/vk/landinggo/sections/pricing"
	"github.com/vk/landinggo/sections/testimonials"
)

// coreSections is the definitive list of all sections that are compiled
// into the landinggo binary.
var coreSections = []registry.Section{
	hero.Section{},
	features.Section{},
	pricing.Section{},
	testimonials.Section{},
	contact.Section{},
}

// AlwaysOnSectionID names the section the composer loads first and renders
// regardless of the flag table.
const AlwaysOnSectionID = hero.ID
