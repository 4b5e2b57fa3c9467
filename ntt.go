// ntt.go - Negacyclic number-theoretic transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

// invNMont is the Montgomery encoding of the inverse of ringN mod ringQ,
// i.e. (ringN^-1 * R) mod ringQ where R = 2^rlog. Since ringN = 2^8 and
// R = 2^18, this reduces to R/ringN = 2^10 = 1024 with no modular
// reduction needed.
const invNMont = 1024

// zetas holds Montgomery-encoded powers of a primitive 512th root of unity
// mod ringQ, ordered to match the access pattern of ntt: one fresh entry
// per butterfly group, visited from the coarsest level (distance 128) down
// to the finest (distance 1).
var zetas = [255]uint16{
	254, 862, 5047, 6586, 5538, 4400, 7103, 5656, 877, 3823, 6086, 5382,
	3336, 6362, 484, 5213, 3, 3639, 5775, 2497, 5932, 6100, 5134, 7143,
	343, 1285, 7390, 6414, 7418, 3583, 671, 4146, 412, 491, 1957, 2397,
	5596, 5625, 3538, 5485, 6140, 4931, 6122, 5222, 7407, 5602, 2539, 6097,
	2666, 157, 1142, 1752, 4965, 641, 2461, 3240, 133, 28, 2552, 606,
	6952, 6719, 2298, 2979, 485, 4549, 4224, 6830, 1442, 5559, 3009, 2635,
	4245, 2915, 6722, 7676, 6128, 5737, 6065, 2908, 6084, 6132, 5856, 2137,
	1650, 4390, 3997, 7319, 4314, 2121, 1289, 3659, 4306, 98, 1251, 5074,
	5988, 4899, 5400, 6724, 3851, 1215, 1010, 1492, 1019, 7087, 2920, 5798,
	5041, 657, 2822, 5987, 6905, 3475, 3995, 4434, 6910, 1859, 5939, 3465,
	889, 3017, 6143, 8, 4021, 38, 5658, 339, 2368, 7371, 3567, 2069,
	2036, 4067, 1990, 354, 7027, 5522, 734, 1005, 4913, 6694, 2214, 6929,
	6076, 4109, 5818, 599, 6314, 925, 3108, 3633, 839, 3815, 2065, 1917,
	2447, 3345, 2022, 1699, 2329, 6150, 5302, 332, 1730, 1577, 4377, 7348,
	2568, 4179, 4517, 2114, 651, 6201, 1172, 2530, 2356, 496, 3510, 7443,
	1351, 2710, 4497, 2506, 5655, 382, 1898, 6073, 5965, 43, 7211, 3883,
	1679, 1162, 6055, 2106, 4311, 6163, 3195, 3579, 2501, 7399, 6119, 2675,
	1307, 3105, 4288, 3463, 1804, 6848, 888, 1174, 565, 1736, 4604, 1645,
	3991, 2053, 1675, 1090, 590, 1337, 6643, 4484, 7078, 5937, 6737, 5049,
	5904, 2860, 5001, 604, 186, 2869, 4724, 1194, 6777, 1831, 3387, 7613,
	386, 7358, 5674, 1239, 5392, 3965, 2569, 5027, 607, 6596, 963, 3401,
	7126, 2713, 6965,
}

// zetasInv holds the corresponding inverse-transform twiddles, ordered to
// match invntt's access pattern: one fresh entry per butterfly group,
// visited from the finest level (distance 1) up to the coarsest
// (distance 128).
var zetasInv = [255]uint16{
	716, 4968, 555, 4280, 6718, 1085, 7074, 2654, 5112, 3716, 2289, 6442,
	2007, 323, 7295, 68, 4294, 5850, 904, 6487, 2957, 4812, 7495, 7077,
	2680, 4821, 1777, 2632, 944, 1744, 603, 3197, 1038, 6344, 7091, 6591,
	6006, 5628, 3690, 6036, 3077, 5945, 7116, 6507, 6793, 833, 5877, 4218,
	3393, 4576, 6374, 5006, 1562, 282, 5180, 4102, 4486, 1518, 3370, 5575,
	1626, 6519, 6002, 3798, 470, 7638, 1716, 1608, 5783, 7299, 2026, 5175,
	3184, 4971, 6330, 238, 4171, 7185, 5325, 5151, 6509, 1480, 7030, 5567,
	3164, 3502, 5113, 333, 3304, 6104, 5951, 7349, 2379, 1531, 5352, 5982,
	5659, 4336, 5234, 5764, 5616, 3866, 6842, 4048, 4573, 6756, 1367, 7082,
	1863, 3572, 1605, 752, 5467, 987, 2768, 6676, 6947, 2159, 654, 7327,
	5691, 3614, 5645, 5612, 4114, 310, 5313, 7342, 2023, 7643, 3660, 7673,
	1538, 4664, 6792, 4216, 1742, 5822, 771, 3247, 3686, 4206, 776, 1694,
	4859, 7024, 2640, 1883, 4761, 594, 6662, 6189, 6671, 6466, 3830, 957,
	2281, 2782, 1693, 2607, 6430, 7583, 3375, 4022, 6392, 5560, 3367, 362,
	3684, 3291, 6031, 5544, 1825, 1549, 1597, 4773, 1616, 1944, 1553, 5,
	959, 4766, 3436, 5046, 4672, 2122, 6239, 851, 3457, 3132, 7196, 4702,
	5383, 962, 729, 7075, 5129, 7653, 7548, 4441, 5220, 7040, 2716, 5929,
	6539, 7524, 5015, 1584, 5142, 2079, 274, 2459, 1559, 2750, 1541, 2196,
	4143, 2056, 2085, 5284, 5724, 7190, 7269, 3535, 7010, 4098, 263, 1267,
	291, 6396, 7338, 538, 2547, 1581, 1749, 5184, 1906, 4042, 7678, 2468,
	7197, 1319, 4345, 2299, 1595, 3858, 6804, 2025, 578, 3281, 2143, 1095,
	2634, 6819, 7427,
}

// ntt computes the negacyclic number-theoretic transform of a polynomial
// (256 coefficients) in place, via a Cooley-Tukey decimation-in-frequency
// butterfly. Input is assumed in normal order, output in bitreversed order.
func ntt(p *[ringN]uint16) {
	var j int
	k := 0
	for level := 7; level >= 0; level-- {
		distance := 1 << uint(level)
		for start := 0; start < ringN; start = j + distance {
			zeta := zetas[k]
			k++
			for j = start; j < start+distance; j++ {
				t := montgomeryReduce(uint32(zeta) * uint32(p[j+distance]))
				p[j+distance] = barrettReduce(p[j] + 4*ringQ - t)

				if level&1 == 1 { // odd level: omit reduction, be lazy
					p[j] = p[j] + t
				} else {
					p[j] = barrettReduce(p[j] + t)
				}
			}
		}
	}
}

// invntt computes the inverse negacyclic NTT of a polynomial in place, via
// a Gentleman-Sande decimation-in-time butterfly, followed by a single
// constant scale-by-ringN^-1 pass. Input assumed in bitreversed order,
// output in normal order.
func invntt(p *[ringN]uint16) {
	k := 0
	for level := 0; level < 8; level++ {
		distance := 1 << uint(level)
		for start := 0; start < ringN; start += 2 * distance {
			zeta := zetasInv[k]
			k++
			for j := start; j < start+distance; j++ {
				tj, tjd := p[j], p[j+distance]
				p[j] = barrettReduce(tj + tjd)
				p[j+distance] = montgomeryReduce(uint32(zeta) * uint32(tj+4*ringQ-tjd))
			}
		}
	}

	for i, v := range p {
		p[i] = montgomeryReduce(uint32(v) * invNMont)
	}
}
