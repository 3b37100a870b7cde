// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// cpRealGridData and cpAvGridData are tabulated c_p(T, alpha) [kJ/(kg·K)] for
// natural gas combustion products. Rows are temperature 273..2273K in 100K
// steps (21 rows), columns are excess-air ratio alpha=1..10 (10 columns).
// cpRealGrid and cpAvGrid below hold the same data as la.MatAlloc-allocated
// matrices, the way msolid/state.go allocates its deformation-gradient
// tensor, since the bilinear interpolation operates on a runtime 2-D slice
// rather than a fixed-size array.
var cpRealGridData = [21][10]float64{
	{1.0999, 1.0532, 1.0370, 1.0288, 1.0239, 1.0205, 1.0182, 1.0164, 1.0150, 1.0138},
	{1.1201, 1.0665, 1.0480, 1.0386, 1.0329, 1.0291, 1.0263, 1.0243, 1.0227, 1.0214},
	{1.1462, 1.0873, 1.0669, 1.0566, 1.0503, 1.0462, 1.0431, 1.0409, 1.0391, 1.0377},
	{1.1760, 1.1126, 1.0907, 1.0795, 1.0728, 1.0683, 1.0651, 1.0626, 1.0607, 1.0592},
	{1.2075, 1.1400, 1.1167, 1.1048, 1.0976, 1.0928, 1.0894, 1.0868, 1.0848, 1.0831},
	{1.2394, 1.1678, 1.1431, 1.1305, 1.1229, 1.1178, 1.1141, 1.1114, 1.1092, 1.1075},
	{1.2704, 1.1948, 1.1686, 1.1553, 1.1473, 1.1419, 1.1380, 1.1351, 1.1329, 1.1310},
	{1.2998, 1.2201, 1.1924, 1.1784, 1.1699, 1.1643, 1.1602, 1.1571, 1.1547, 1.1528},
	{1.3272, 1.2432, 1.2142, 1.1994, 1.1905, 1.1845, 1.1802, 1.1770, 1.1745, 1.1725},
	{1.3521, 1.2641, 1.2336, 1.2181, 1.2087, 1.2025, 1.1980, 1.1946, 1.1920, 1.1899},
	{1.3745, 1.2826, 1.2507, 1.2345, 1.2248, 1.2182, 1.2135, 1.2100, 1.2073, 1.2051},
	{1.3945, 1.2989, 1.2658, 1.2490, 1.2388, 1.2320, 1.2271, 1.2235, 1.2206, 1.2183},
	{1.4123, 1.3133, 1.2790, 1.2617, 1.2511, 1.2441, 1.2390, 1.2352, 1.2323, 1.2299},
	{1.4281, 1.3261, 1.2908, 1.2729, 1.2621, 1.2548, 1.2496, 1.2457, 1.2426, 1.2402},
	{1.4423, 1.3376, 1.3014, 1.2830, 1.2719, 1.2644, 1.2591, 1.2551, 1.2519, 1.2494},
	{1.4550, 1.3481, 1.3110, 1.2922, 1.2808, 1.2732, 1.2677, 1.2636, 1.2604, 1.2579},
	{1.4667, 1.3576, 1.3198, 1.3007, 1.2891, 1.2813, 1.2757, 1.2716, 1.2683, 1.2657},
	{1.4774, 1.3664, 1.3280, 1.3085, 1.2967, 1.2888, 1.2831, 1.2789, 1.2756, 1.2729},
	{1.4871, 1.3745, 1.3354, 1.3156, 1.3037, 1.2956, 1.2899, 1.2856, 1.2822, 1.2795},
	{1.4957, 1.3816, 1.3420, 1.3220, 1.3099, 1.3017, 1.2959, 1.2915, 1.2881, 1.2854},
	{1.5028, 1.3875, 1.3476, 1.3273, 1.3151, 1.3069, 1.3010, 1.2966, 1.2931, 1.2904},
}

var cpAvGridData = [21][10]float64{
	{1.1000, 1.0533, 1.0371, 1.0289, 1.0239, 1.0206, 1.0182, 1.0164, 1.0151, 1.0139},
	{1.1095, 1.0592, 1.0418, 1.0330, 1.0277, 1.0241, 1.0215, 1.0196, 1.0181, 1.0169},
	{1.1212, 1.0679, 1.0495, 1.0401, 1.0345, 1.0307, 1.0279, 1.0259, 1.0243, 1.0230},
	{1.1345, 1.0786, 1.0592, 1.0494, 1.0434, 1.0394, 1.0366, 1.0344, 1.0328, 1.0314},
	{1.1489, 1.0905, 1.0703, 1.0600, 1.0538, 1.0497, 1.0467, 1.0445, 1.0427, 1.0413},
	{1.1638, 1.1032, 1.0822, 1.0716, 1.0651, 1.0608, 1.0577, 1.0554, 1.0536, 1.0521},
	{1.1790, 1.1162, 1.0945, 1.0834, 1.0768, 1.0723, 1.0691, 1.0667, 1.0648, 1.0633},
	{1.1941, 1.1292, 1.1068, 1.0954, 1.0885, 1.0839, 1.0805, 1.0781, 1.0761, 1.0746},
	{1.2090, 1.1420, 1.1188, 1.1071, 1.1000, 1.0952, 1.0918, 1.0892, 1.0872, 1.0856},
	{1.2235, 1.1544, 1.1305, 1.1184, 1.1110, 1.1061, 1.1026, 1.0999, 1.0979, 1.0962},
	{1.2375, 1.1663, 1.1417, 1.1292, 1.1216, 1.1165, 1.1129, 1.1102, 1.1080, 1.1063},
	{1.2509, 1.1777, 1.1523, 1.1394, 1.1316, 1.1264, 1.1227, 1.1199, 1.1177, 1.1159},
	{1.2637, 1.1884, 1.1623, 1.1491, 1.1411, 1.1357, 1.1319, 1.1290, 1.1268, 1.1250},
	{1.2758, 1.1986, 1.1718, 1.1582, 1.1500, 1.1445, 1.1406, 1.1376, 1.1353, 1.1335},
	{1.2873, 1.2081, 1.1807, 1.1668, 1.1584, 1.1528, 1.1488, 1.1457, 1.1434, 1.1415},
	{1.2981, 1.2172, 1.1892, 1.1749, 1.1663, 1.1606, 1.1565, 1.1534, 1.1509, 1.1490},
	{1.3082, 1.2257, 1.1971, 1.1826, 1.1738, 1.1679, 1.1637, 1.1605, 1.1581, 1.1561},
	{1.3177, 1.2336, 1.2045, 1.1897, 1.1807, 1.1748, 1.1705, 1.1672, 1.1647, 1.1627},
	{1.3266, 1.2410, 1.2113, 1.1963, 1.1872, 1.1811, 1.1767, 1.1734, 1.1708, 1.1688},
	{1.3349, 1.2477, 1.2175, 1.2022, 1.1929, 1.1867, 1.1823, 1.1789, 1.1763, 1.1742},
	{1.3426, 1.2537, 1.2229, 1.2073, 1.1979, 1.1915, 1.1870, 1.1836, 1.1809, 1.1788},
}

const ngTempMin = 273.0
const ngTempStep = 100.0
const ngTempRows = 21
const ngAlphaMin = 1.0
const ngAlphaStep = 1.0
const ngAlphaCols = 10

// cpRealGrid and cpAvGrid are the la.MatAlloc-backed matrices bilinear reads;
// populated once at package init from the literal tables above.
var cpRealGrid, cpAvGrid [][]float64

func init() {
	cpRealGrid = la.MatAlloc(ngTempRows, ngAlphaCols)
	cpAvGrid = la.MatAlloc(ngTempRows, ngAlphaCols)
	for i := 0; i < ngTempRows; i++ {
		copy(cpRealGrid[i], cpRealGridData[i][:])
		copy(cpAvGrid[i], cpAvGridData[i][:])
	}
}

// bilinear interpolates grid (rows indexed by T, cols indexed by alpha) at
// the given (T, alpha), clamping to the grid bounds.
func bilinear(grid [][]float64, T, alpha float64) float64 {
	ti := (T - ngTempMin) / ngTempStep
	ai := (alpha - ngAlphaMin) / ngAlphaStep
	if ti < 0 {
		ti = 0
	}
	if ti > ngTempRows-1 {
		ti = ngTempRows - 1
	}
	if ai < 0 {
		ai = 0
	}
	if ai > ngAlphaCols-1 {
		ai = ngAlphaCols - 1
	}
	t0 := int(ti)
	a0 := int(ai)
	t1 := t0 + 1
	a1 := a0 + 1
	if t1 > ngTempRows-1 {
		t1 = t0
	}
	if a1 > ngAlphaCols-1 {
		a1 = a0
	}
	ft := ti - float64(t0)
	fa := ai - float64(a0)
	v00 := grid[t0][a0]
	v01 := grid[t0][a1]
	v10 := grid[t1][a0]
	v11 := grid[t1][a1]
	v0 := v00 + fa*(v01-v00)
	v1 := v10 + fa*(v11-v10)
	return (v0 + ft*(v1-v0)) * 1000
}

// NaturalGasProducts implements combustion-products-of-natural-gas work
// fluid. c_p is tabulated as a function of (T, alpha) and interpolated
// bilinearly.
type NaturalGasProducts struct {
	r     float64
	qn    float64
	l0    float64
	alpha float64
	t     float64
	t1    float64
	t2    float64
	cp    float64
	cpAv  float64
	cpAvI float64
}

func init() {
	allocators["naturalgas"] = func() Fluid { return newNaturalGas() }
}

func newNaturalGas() *NaturalGasProducts {
	o := &NaturalGasProducts{r: 300.67, qn: 48.412e6, l0: 16.683, alpha: 1, t: 288, t1: 288, t2: 400}
	o.cp = o.cpRealFunc(o.t, o.alpha)
	o.cpAv = o.cpAvFunc(o.t, o.alpha)
	o.cpAvI = o.cpAvIntFunc(o.t1, o.t2, o.alpha)
	return o
}

// Init initialises the model from named parameters
func (o *NaturalGasProducts) Init(prms Prms) (err error) {
	*o = *newNaturalGas()
	for _, p := range prms {
		switch p.N {
		case "T":
			o.SetT(p.V)
		case "T1":
			o.SetT1(p.V)
		case "T2":
			o.SetT2(p.V)
		case "alpha":
			err = o.SetAlpha(p.V)
			if err != nil {
				return
			}
		default:
			return chk.Err("naturalgas: parameter named %s is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o *NaturalGasProducts) GetPrms() Prms {
	return Prms{
		{N: "T", V: 288},
		{N: "T1", V: 288},
		{N: "T2", V: 400},
		{N: "alpha", V: 1},
	}
}

func (o *NaturalGasProducts) Name() string     { return "naturalgas" }
func (o *NaturalGasProducts) R() float64       { return o.r }
func (o *NaturalGasProducts) Qn() float64      { return o.qn }
func (o *NaturalGasProducts) L0() float64      { return o.l0 }
func (o *NaturalGasProducts) HasAlpha() bool   { return true }
func (o *NaturalGasProducts) T() float64       { return o.t }
func (o *NaturalGasProducts) T1() float64      { return o.t1 }
func (o *NaturalGasProducts) T2() float64      { return o.t2 }
func (o *NaturalGasProducts) Alpha() float64   { return o.alpha }
func (o *NaturalGasProducts) Cp() float64      { return o.cp }
func (o *NaturalGasProducts) CpAv() float64    { return o.cpAv }
func (o *NaturalGasProducts) CpAvInt() float64 { return o.cpAvI }
func (o *NaturalGasProducts) K() float64       { return kFromCp(o.cp, o.r) }
func (o *NaturalGasProducts) KAv() float64     { return kFromCp(o.cpAv, o.r) }
func (o *NaturalGasProducts) KAvInt() float64  { return kFromCp(o.cpAvI, o.r) }

func (o *NaturalGasProducts) SetAlpha(alpha float64) error {
	o.alpha = alpha
	o.cp = o.cpRealFunc(o.t, alpha)
	o.cpAv = o.cpAvFunc(o.t, alpha)
	o.cpAvI = o.cpAvIntFunc(o.t1, o.t2, alpha)
	return nil
}

func (o *NaturalGasProducts) SetT(T float64) {
	o.t = T
	o.cp = o.cpRealFunc(T, o.alpha)
	o.cpAv = o.cpAvFunc(T, o.alpha)
}

func (o *NaturalGasProducts) SetT1(T1 float64) {
	o.t1 = T1
	o.cpAvI = o.cpAvIntFunc(T1, o.t2, o.alpha)
}

func (o *NaturalGasProducts) SetT2(T2 float64) {
	o.t2 = T2
	o.cpAvI = o.cpAvIntFunc(o.t1, T2, o.alpha)
}

func (o *NaturalGasProducts) cpRealFunc(T, alpha float64) float64 {
	return bilinear(cpRealGrid, T, alpha)
}

func (o *NaturalGasProducts) cpAvFunc(T, alpha float64) float64 {
	return bilinear(cpAvGrid, T, alpha)
}

func (o *NaturalGasProducts) cpAvIntFunc(T1, T2, alpha float64) float64 {
	return (o.cpAvFunc(T2, alpha)*(T2-TRef) - o.cpAvFunc(T1, alpha)*(T1-TRef)) / (T2 - T1)
}
