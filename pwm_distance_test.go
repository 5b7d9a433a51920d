/* Copyright (C) 2024 The chromVAR-go authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package chromvar

/* -------------------------------------------------------------------------- */

import "math"
import "testing"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

func TestPWMDistance1(test *testing.T) {
  // a PWM compared to itself
  pwm := OneHotPWM("cattcc")
  r   := PWMDistance(pwm, pwm, 4)
  if r.Distance != 0.0 || r.Strand != StrandForward || r.Offset != 0 {
    test.Error("test failed")
  }
}

func TestPWMDistance2(test *testing.T) {
  // shifted k-mers align with offset one
  a := OneHotPWM("cattcc")
  b := OneHotPWM("attcca")
  r := PWMDistance(a, b, 4)
  if r.Distance != 0.0 || r.Strand != StrandForward || r.Offset != 1 {
    test.Error("test failed")
  }
  // swapping the arguments negates the offset
  r = PWMDistance(b, a, 4)
  if r.Distance != 0.0 || r.Strand != StrandForward || r.Offset != -1 {
    test.Error("test failed")
  }
}

func TestPWMDistance3(test *testing.T) {
  // reverse complement matches on the reverse strand
  a := OneHotPWM("cattgc")
  b := OneHotPWM("cattgc").RevComp()
  r := PWMDistance(a, b, 4)
  if r.Distance != 0.0 || r.Strand != StrandReverse || r.Offset != 0 {
    test.Error("test failed")
  }
}

func TestPWMDistance4(test *testing.T) {
  // uniform matrices are identical at every offset and orientation;
  // ties resolve to the forward strand at offset zero
  values := [][]float64{
    {0.25, 0.25, 0.25},
    {0.25, 0.25, 0.25},
    {0.25, 0.25, 0.25},
    {0.25, 0.25, 0.25}}
  pwm, err := NewPWM(values)
  if err != nil {
    test.Error("test failed"); return
  }
  r := PWMDistance(pwm, pwm, 1)
  if r.Distance != 0.0 || r.Strand != StrandForward || r.Offset != 0 {
    test.Error("test failed")
  }
}

func TestPWMDistance5(test *testing.T) {
  // no offset with sufficient overlap
  a := OneHotPWM("cat")
  b := OneHotPWM("tcc")
  r := PWMDistance(a, b, 5)
  if r.Ok() {
    test.Error("test failed")
  }
  if !math.IsInf(r.Distance, 1) || r.Strand != StrandNone || r.Offset != 0 {
    test.Error("test failed")
  }
}

func TestPWMDistance6(test *testing.T) {
  pool := threadpool.New(2, 100)

  a := []PWM{OneHotPWM("cattcc"), OneHotPWM("gggggg")}
  b := []PWM{OneHotPWM("attcca"), OneHotPWM("cat")}

  r, err := ComputePWMDistances(a, b, 4, pool)
  if err != nil {
    test.Error("test failed"); return
  }
  if r.At(0, 0).Distance != 0.0 || r.At(0, 0).Offset != 1 {
    test.Error("test failed")
  }
  // second matrix of b is too short for the required overlap
  if r.At(0, 1).Ok() || r.At(1, 1).Ok() {
    test.Error("test failed")
  }
  if r.At(1, 0).Distance <= 0.0 {
    test.Error("test failed")
  }
}
