// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"gioui.org/x/arrange/font"
)

// Parameters control the layout of text.
type Parameters struct {
	Font font.Font
	// PxPerEm is the font size in pixels.
	PxPerEm fixed.Int26_6
	// MaxWidth breaks lines at line break opportunities to fit the
	// width. Zero means no limit. Words wider than MaxWidth get a line
	// of their own.
	MaxWidth fixed.Int26_6
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int
}

// Shaper measures text in the faces of a font collection. The first
// face of the collection is the default.
type Shaper struct {
	faces []font.FontFace
	sized map[sizedKey]xfont.Face
	cache lineCache
	seg   segmenter.Segmenter
}

type sizedKey struct {
	font font.Font
	ppem fixed.Int26_6
}

var errNoFaces = errors.New("text: empty font collection")

// NewShaper returns a shaper for the faces in collection.
func NewShaper(collection []font.FontFace) *Shaper {
	return &Shaper{
		faces: collection,
		sized: make(map[sizedKey]xfont.Face),
	}
}

// Face returns the collection face closest to f at ppem pixels per em.
func (s *Shaper) Face(f font.Font, ppem fixed.Int26_6) (xfont.Face, error) {
	if len(s.faces) == 0 {
		return nil, errNoFaces
	}
	ff := s.faceFor(f)
	k := sizedKey{font: ff.Font, ppem: ppem}
	if face, ok := s.sized[k]; ok {
		return face, nil
	}
	face, err := ff.Face.Sized(fixedToFloat(ppem))
	if err != nil {
		return nil, err
	}
	s.sized[k] = face
	return face, nil
}

// faceFor returns the closest face to f within its typeface, falling
// back to the first typeface of the same spacing and then the default
// face.
func (s *Shaper) faceFor(f font.Font) font.FontFace {
	if ff, ok := s.closestInTypeface(f); ok {
		return ff
	}
	f.Typeface = s.faces[0].Font.Typeface
	for _, ff := range s.faces {
		if ff.Font.Mono == f.Mono {
			f.Typeface = ff.Font.Typeface
			break
		}
	}
	if ff, ok := s.closestInTypeface(f); ok {
		return ff
	}
	return s.faces[0]
}

func (s *Shaper) closestInTypeface(f font.Font) (font.FontFace, bool) {
	if ff, ok := closestFont(f, s.faces); ok {
		return ff, true
	}
	f.Italic = false
	return closestFont(f, s.faces)
}

// Layout breaks str into lines. Explicit newlines always break.
func (s *Shaper) Layout(p Parameters, str string) ([]Line, error) {
	k := lineKey{params: p, str: str}
	if lines, ok := s.cache.Get(k); ok {
		return lines, nil
	}
	face, err := s.Face(p.Font, p.PxPerEm)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	var lines []Line
	for _, para := range strings.Split(str, "\n") {
		for _, l := range s.wrap(face, para, p.MaxWidth) {
			lines = append(lines, Line{
				Text:    l,
				Width:   xfont.MeasureString(face, l),
				Ascent:  m.Ascent,
				Descent: m.Height - m.Ascent,
			})
		}
	}
	if p.MaxLines > 0 && len(lines) > p.MaxLines {
		lines = lines[:p.MaxLines]
	}
	s.cache.Put(k, lines)
	return lines, nil
}

// MinWidth returns the width of the widest unbreakable segment of
// str, the narrowest width str can be broken to.
func (s *Shaper) MinWidth(p Parameters, str string) (fixed.Int26_6, error) {
	face, err := s.Face(p.Font, p.PxPerEm)
	if err != nil {
		return 0, err
	}
	var w fixed.Int26_6
	for _, para := range strings.Split(str, "\n") {
		for _, seg := range s.segments(para) {
			if sw := xfont.MeasureString(face, trimSpace(seg)); sw > w {
				w = sw
			}
		}
	}
	return w, nil
}

// wrap breaks a paragraph at line break opportunities so that every
// line fits width. A segment wider than width gets a line of its own.
func (s *Shaper) wrap(face xfont.Face, para string, width fixed.Int26_6) []string {
	if width <= 0 || xfont.MeasureString(face, para) <= width {
		return []string{para}
	}
	var lines []string
	cur := ""
	for _, seg := range s.segments(para) {
		cand := cur + seg
		if cur == "" || xfont.MeasureString(face, trimSpace(cand)) <= width {
			cur = cand
			continue
		}
		lines = append(lines, trimSpace(cur))
		cur = seg
	}
	return append(lines, trimSpace(cur))
}

// segments splits para at its UAX #14 line break opportunities. Every
// segment keeps its trailing spaces.
func (s *Shaper) segments(para string) []string {
	s.seg.Init([]rune(para))
	it := s.seg.LineIterator()
	var segs []string
	for it.Next() {
		segs = append(segs, string(it.Line().Text))
	}
	return segs
}

func trimSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// closestFont returns the closest FontFace in available by weight.
// In case of equality the lighter weight will be returned.
func closestFont(lookup font.Font, available []font.FontFace) (font.FontFace, bool) {
	lookup.Weight = lookup.Weight.Value()
	found := false
	var match font.FontFace
	for _, cf := range available {
		if cf.Font == lookup {
			return cf, true
		}
		if cf.Font.Typeface != lookup.Typeface || cf.Font.Mono != lookup.Mono || cf.Font.Italic != lookup.Italic {
			continue
		}
		if !found {
			found = true
			match = cf
			continue
		}
		cDist := weightDistance(lookup.Weight, cf.Font.Weight)
		mDist := weightDistance(lookup.Weight, match.Font.Weight)
		if cDist < mDist {
			match = cf
		} else if cDist == mDist && cf.Font.Weight < match.Font.Weight {
			match = cf
		}
	}
	return match, found
}

// weightDistance returns the distance value between two font weights.
func weightDistance(wa font.Weight, wb font.Weight) int {
	diff := int(wa.Value()) - int(wb.Value())
	if diff < 0 {
		return -diff
	}
	return diff
}

func fixedToFloat(i fixed.Int26_6) float32 {
	return float32(i) / 64
}
