package compress

// g implements the BLAKE-512 G mixing function.
//
// G takes four state words and two pre-combined message inputs and mixes
// them with additions, XORs, and rotations. The inputs x and y are the
// message words selected by the permutation schedule, each XORed with
// the round constant indexed by its partner:
//
//	x = m[σr(2i)]   ^ u[σr(2i+1)]
//	y = m[σr(2i+1)] ^ u[σr(2i)]
//
// Rotation distances for the 64-bit variant are 32, 25, 16, and 11.
//
// Reference: BLAKE submission document, Section 2.2.2 (BLAKE-64)
func g(a, b, c, d, x, y uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + x
	d = rotr64(d^a, 32)
	c = c + d
	b = rotr64(b^c, 25)

	a = a + b + y
	d = rotr64(d^a, 16)
	c = c + d
	b = rotr64(b^c, 11)

	return a, b, c, d
}

// rotr64 performs a right rotation of x by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// round applies one full BLAKE-512 round to the working state v: G on the
// four columns, then G on the four diagonals. m holds the sixteen decoded
// message words and r is the round index (0-based).
func round(v *[16]uint64, m *[16]uint64, r int) {
	s := &sigma[r%10]

	// Column step
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12],
		m[s[0]]^u512[s[1]], m[s[1]]^u512[s[0]])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13],
		m[s[2]]^u512[s[3]], m[s[3]]^u512[s[2]])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14],
		m[s[4]]^u512[s[5]], m[s[5]]^u512[s[4]])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15],
		m[s[6]]^u512[s[7]], m[s[7]]^u512[s[6]])

	// Diagonal step
	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15],
		m[s[8]]^u512[s[9]], m[s[9]]^u512[s[8]])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12],
		m[s[10]]^u512[s[11]], m[s[11]]^u512[s[10]])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13],
		m[s[12]]^u512[s[13]], m[s[13]]^u512[s[12]])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14],
		m[s[14]]^u512[s[15]], m[s[15]]^u512[s[14]])
}
