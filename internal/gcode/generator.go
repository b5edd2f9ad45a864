package gcode

import (
	"fmt"
	"math"
	"strings"

	"github.com/bitcarousel/bitcarousel/internal/geom"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// Generator produces GCode that mills the socket pockets of a stand design.
type Generator struct {
	Settings model.MillSettings
	Catalog  model.Catalog
	profile  model.MachineProfile
}

func New(settings model.MillSettings, catalog model.Catalog) *Generator {
	return &Generator{
		Settings: settings,
		Catalog:  catalog,
		profile:  model.GetProfile(settings.Profile),
	}
}

// socket is one pocket to mill: a closed toolpath loop in stand coordinates
// (origin at the stand center), already offset inward for the tool radius.
type socket struct {
	label string
	loop  []geom.Vec2
}

// Generate produces the full GCode program for the design.
func (g *Generator) Generate(d model.Design) string {
	var b strings.Builder

	sockets := g.collectSockets(d)

	g.writeHeader(&b, d, len(sockets))

	for i, s := range sockets {
		g.writeSocket(&b, s, i+1)
	}

	g.writeFooter(&b)
	return b.String()
}

// collectSockets builds one toolpath loop per placed item, plus the center
// well when one is set. Items with an unknown catalog key are skipped; a
// comment in the output records the omission.
func (g *Generator) collectSockets(d model.Design) []socket {
	var sockets []socket

	if d.Center != "" {
		if spec, ok := g.Catalog.Find(d.Center); ok {
			if loop := g.socketLoop(spec, geom.Vec2{}, 0); loop != nil {
				sockets = append(sockets, socket{label: "center " + spec.Label, loop: loop})
			}
		}
	}

	for _, it := range d.Items {
		spec, ok := g.Catalog.Find(it.ItemType)
		if !ok {
			continue
		}
		center := geom.FromPolar(it.Radius, it.Angle)
		if loop := g.socketLoop(spec, center, it.Angle); loop != nil {
			sockets = append(sockets, socket{label: spec.Label, loop: loop})
		}
	}
	return sockets
}

// socketLoop builds the pocket perimeter for one item, offset inward by the
// tool radius so the cut edge lands on the true socket boundary. Returns nil
// when the tool is too large for the socket.
func (g *Generator) socketLoop(spec model.ItemSpec, center geom.Vec2, angleDeg float64) []geom.Vec2 {
	toolR := g.Settings.ToolDiameter / 2.0
	u := geom.UnitAt(angleDeg + 90) // tangential direction at the placement angle

	switch spec.Shape {
	case model.ShapeCircle:
		r := spec.Diameter/2.0 - toolR
		if r <= 0 {
			return nil
		}
		return g.polygonize(center, r)

	case model.ShapeDiamond:
		halfU := spec.Length/2.0 - toolR
		halfV := spec.Diameter/2.0 - toolR
		if halfU <= 0 || halfV <= 0 {
			return nil
		}
		h := geom.RhombusHitbox(center, u, halfU, halfV)
		return h.Verts[:]

	default: // rect, tube
		halfU := spec.TangentialHalfSpan() - toolR
		halfV := spec.RadialHalfSpan() - toolR
		if halfU <= 0 || halfV <= 0 {
			return nil
		}
		h := geom.BoxHitbox(center, u, halfU, halfV)
		return h.Verts[:]
	}
}

// polygonize approximates a circle as a closed polygon with the configured
// segment count.
func (g *Generator) polygonize(center geom.Vec2, radius float64) []geom.Vec2 {
	n := g.Settings.SegmentsPerCircle
	if n < 8 {
		n = 8
	}
	pts := make([]geom.Vec2, n)
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 360.0
		pts[i] = center.Add(geom.FromPolar(radius, a))
	}
	return pts
}

func (g *Generator) writeHeader(b *strings.Builder, d model.Design, socketCount int) {
	p := g.profile

	b.WriteString(g.comment(fmt.Sprintf("BitCarousel GCode: %s", d.Name)))
	b.WriteString(g.comment(fmt.Sprintf("Sockets: %d", socketCount)))
	b.WriteString(g.comment(fmt.Sprintf("Tool: %.1fmm, Feed: %.0f mm/min, Plunge: %.0f mm/min",
		g.Settings.ToolDiameter, g.Settings.FeedRate, g.Settings.PlungeRate)))
	b.WriteString(g.comment(fmt.Sprintf("Depth: %.1fmm in %.1fmm passes",
		g.Settings.SocketDepth, g.Settings.PassDepth)))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}

	if p.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(p.SpindleStart+"\n", g.Settings.SpindleSpeed))
	}

	// Origin is the stand center; retract before any XY travel.
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(0), g.format(0)))

	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(g.comment("=== Job complete ==="))

	for _, code := range p.EndCode {
		code = strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ))
		b.WriteString(code + "\n")
	}

	if p.SpindleStop != "" {
		b.WriteString(p.SpindleStop + "\n")
	}
}

func (g *Generator) writeSocket(b *strings.Builder, s socket, num int) {
	loop := s.loop
	if len(loop) < 3 {
		return
	}

	b.WriteString(g.comment(fmt.Sprintf("--- Socket %d: %s ---", num, s.label)))

	numPasses := int(math.Ceil(g.Settings.SocketDepth / g.Settings.PassDepth))

	for pass := 1; pass <= numPasses; pass++ {
		depth := float64(pass) * g.Settings.PassDepth
		if depth > g.Settings.SocketDepth {
			depth = g.Settings.SocketDepth
		}

		b.WriteString(g.comment(fmt.Sprintf("Pass %d/%d, depth=%.2fmm", pass, numPasses, depth)))

		// Rapid to the first point, then plunge.
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove,
			g.format(loop[0].X), g.format(loop[0].Y)))
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", g.profile.FeedMove,
			g.format(-depth), g.format(g.Settings.PlungeRate)))

		// Follow the loop and close it.
		for i := 1; i < len(loop); i++ {
			b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
				g.format(loop[i].X), g.format(loop[i].Y),
				g.format(g.Settings.FeedRate)))
		}
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
			g.format(loop[0].X), g.format(loop[0].Y),
			g.format(g.Settings.FeedRate)))

		// Retract between passes.
		b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(g.Settings.SafeZ)))
	}

	b.WriteString("\n")
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	format := fmt.Sprintf("%%.%df", g.profile.DecimalPlaces)
	return fmt.Sprintf(format, v)
}
