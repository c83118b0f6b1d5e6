package bigint

// QuoRem returns the quotient q and remainder r of i / by. If by == 0, the
// error wraps ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q  which has the sign of i, or is zero
//
// Int does not support big.Int.DivMod()-style Euclidean division.
//
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return q, r, divisionByZero("QuoRem")
	}
	qm, rm := quoRemMag(i.Abs().words(), by.Abs().words())
	return signed(qm, i.neg != by.neg), signed(rm, i.neg), nil
}

// Quo returns the quotient i/by, truncated towards zero; see QuoRem for more
// details.
func (i Int) Quo(by Int) (q Int, err error) {
	if by.IsZero() {
		return q, divisionByZero("Quo")
	}
	qm, _ := quoRemMag(i.Abs().words(), by.Abs().words())
	return signed(qm, i.neg != by.neg), nil
}

// Rem returns the remainder of i%by, which takes the sign of i; see QuoRem
// for more details.
func (i Int) Rem(by Int) (r Int, err error) {
	if by.IsZero() {
		return r, divisionByZero("Rem")
	}
	_, rm := quoRemMag(i.Abs().words(), by.Abs().words())
	return signed(rm, i.neg), nil
}

// signed turns a magnitude into an Int, negated if neg is set.
func signed(m []uint32, neg bool) Int {
	v := newInt(false, m)
	if neg {
		return v.Neg()
	}
	return v
}

// quoRemMag divides the magnitude u by the non-zero magnitude v. Neither
// input is modified.
func quoRemMag(u, v []uint32) (q, r []uint32) {
	switch {
	case len(v) == 1:
		quo, rem := divSmall(u, v[0])
		return quo, []uint32{rem}

	case len(v) > len(u):
		// The divisor has more limbs than the dividend so it is strictly
		// larger: the whole dividend is the remainder.
		return []uint32{0}, append([]uint32(nil), u...)

	default:
		return quoRemLong(u, v)
	}
}

// quoRemLong is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) over 32-bit
// limbs, for divisors of at least two limbs.
func quoRemLong(u, v []uint32) (q, r []uint32) {
	// Scale both operands so the top divisor limb is at least limbBase/2. The
	// single-limb estimate below is then never more than 2 above the true
	// quotient limb.
	f := uint32(limbBase / (uint64(v[len(v)-1]) + 1))
	vn := mulAddSmall(v, f, 0)
	un := mulAddSmall(u, f, 0)

	n := len(vn)
	m := len(un)

	// One spare limb at the top so that every window un[k : k+n+1] exists.
	un = append(un, 0)
	q = make([]uint32, m-n+1)
	vtop := vn[n-1]

	for k := m - n; k >= 0; k-- {
		// Everything above un[k+n] is already zero, so each step only
		// works on the n+1 limb window ending there.
		win := un[:k+n+1]
		qhat := div21(win[n+k], win[n+k-1], vtop)
		trial := mulAddSmall(vn, qhat, 0)
		for lessAt(win, trial, k) {
			qhat--
			trial = subMag(trial, vn)
		}
		subAt(win, trial, k)
		q[k] = qhat
	}

	// The remainder is still scaled by f; the division by f is exact.
	r, _ = divSmall(shrink(un, false), f)
	return shrink(q, false), r
}
