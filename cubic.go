package spvec

import "fmt"

// MaxSamples is the largest number of intervals [CubicBez.Sample] can divide
// a curve into.
const MaxSamples = 64

// bernstein holds the cubic Bernstein polynomials
// B(i, t) = choose(3, i) · tⁱ · (1−t)³⁻ⁱ at t = k/MaxSamples.
var bernstein = newBernsteinTable()

func newBernsteinTable() *[MaxSamples + 1][4]float64 {
	var tab [MaxSamples + 1][4]float64
	for k := range tab {
		t := float64(k) / MaxSamples
		mt := 1 - t
		tab[k] = [4]float64{
			mt * mt * mt,
			3 * t * mt * mt,
			3 * t * t * mt,
			t * t * t,
		}
	}
	return &tab
}

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at an arbitrary parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Sample appends the n+1 points of the curve at t = 0, 1/n, …, 1 to dst and
// returns the extended slice. n must be a power of two no larger than
// [MaxSamples].
//
// The first and last sample are exactly P0 and P3.
func (c CubicBez) Sample(dst []Point, n int) []Point {
	if n <= 0 || n > MaxSamples || n&(n-1) != 0 {
		panic(fmt.Sprintf("spvec: invalid sample count %d", n))
	}
	step := MaxSamples / n
	for k := 0; k <= MaxSamples; k += step {
		w := &bernstein[k]
		dst = append(dst, Point{
			X: c.P0.X*w[0] + c.P1.X*w[1] + c.P2.X*w[2] + c.P3.X*w[3],
			Y: c.P0.Y*w[0] + c.P1.Y*w[1] + c.P2.Y*w[2] + c.P3.Y*w[3],
		})
	}
	return dst
}
