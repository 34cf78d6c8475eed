package animation

import "sort"

// Parameters is an animation sink that keeps the latest value of every
// parameter it receives. Renderers and the debug HUD read it back by name.
type Parameters struct {
	floats map[string]float32
	bools  map[string]bool
	writes int
}

func NewParameters() *Parameters {
	return &Parameters{
		floats: make(map[string]float32),
		bools:  make(map[string]bool),
	}
}

func (p *Parameters) SetFloat(name string, value float32) {
	p.floats[name] = value
	p.writes++
}

func (p *Parameters) SetBool(name string, value bool) {
	p.bools[name] = value
	p.writes++
}

// Float returns the last value written for name, and whether one exists.
func (p *Parameters) Float(name string) (float32, bool) {
	v, ok := p.floats[name]
	return v, ok
}

// Bool returns the last value written for name, and whether one exists.
func (p *Parameters) Bool(name string) (bool, bool) {
	v, ok := p.bools[name]
	return v, ok
}

// Writes counts every Set call since creation.
func (p *Parameters) Writes() int {
	return p.writes
}

// Names lists every parameter seen so far, sorted.
func (p *Parameters) Names() []string {
	names := make([]string, 0, len(p.floats)+len(p.bools))
	for name := range p.floats {
		names = append(names, name)
	}
	for name := range p.bools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
