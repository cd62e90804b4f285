package spatial

// Vec is a spatial (6-component) vector, partitioned into an angular half and
// a linear half. It represents a spatial velocity, spatial acceleration, or
// spatial force depending on context.
type Vec struct {
	Angular Vec3
	Linear  Vec3
}

// Zero is the zero spatial vector.
func Zero() Vec { return Vec{} }

// NewVec builds a spatial vector from its angular and linear halves.
func NewVec(angular, linear Vec3) Vec { return Vec{Angular: angular, Linear: linear} }

// Add returns the componentwise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.Angular.Add(o.Angular), v.Linear.Add(o.Linear)}
}

// Sub returns the componentwise difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.Angular.Sub(o.Angular), v.Linear.Sub(o.Linear)}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.Angular.Mul(s), v.Linear.Mul(s)}
}

// Neg returns -v.
func (v Vec) Neg() Vec { return v.Scale(-1) }

// Dot computes the spatial dot product v . o. Note that for a motion vector
// (velocity/acceleration) dotted with a force vector, this is the standard
// Featherstone pairing sum(angular.angular) + sum(linear.linear) and is
// symmetric regardless of which operand is "motion" and which is "force".
func (v Vec) Dot(o Vec) float64 {
	return v.Angular.Dot(o.Angular) + v.Linear.Dot(o.Linear)
}

// Mat is a 6x6 spatial matrix viewed as four 3x3 blocks:
//
//	[ AA  AL ]
//	[ LA  LL ]
//
// where AA multiplies/produces angular components, LL multiplies/produces
// linear components, and AL/LA are the off-diagonal coupling blocks.
type Mat struct {
	AA, AL, LA, LL Mat33
}

// BlockMat assembles a spatial matrix from its four 3x3 blocks.
func BlockMat(aa, al, la, ll Mat33) Mat {
	return Mat{AA: aa, AL: al, LA: la, LL: ll}
}

// Diag builds a block-diagonal spatial matrix from two 3x3 blocks, e.g. for
// assembling H for joints whose angular and linear parts are independent.
func Diag(a, l Mat33) Mat {
	return Mat{AA: a, LL: l}
}

// Identity is the 6x6 identity spatial matrix.
func Identity() Mat { return Mat{AA: Identity33(), LL: Identity33()} }

// Add returns the componentwise sum of two spatial matrices.
func (m Mat) Add(o Mat) Mat {
	return Mat{
		AA: m.AA.Add(o.AA),
		AL: m.AL.Add(o.AL),
		LA: m.LA.Add(o.LA),
		LL: m.LL.Add(o.LL),
	}
}

// Sub returns the componentwise difference.
func (m Mat) Sub(o Mat) Mat {
	return Mat{
		AA: m.AA.Sub(o.AA),
		AL: m.AL.Sub(o.AL),
		LA: m.LA.Sub(o.LA),
		LL: m.LL.Sub(o.LL),
	}
}

// MulVec applies the spatial matrix to a spatial vector.
func (m Mat) MulVec(v Vec) Vec {
	return Vec{
		Angular: m.AA.Mul3x1(v.Angular).Add(m.AL.Mul3x1(v.Linear)),
		Linear:  m.LA.Mul3x1(v.Angular).Add(m.LL.Mul3x1(v.Linear)),
	}
}

// Mul multiplies two spatial matrices block-wise.
func (m Mat) Mul(o Mat) Mat {
	return Mat{
		AA: m.AA.Mul3(o.AA).Add(m.AL.Mul3(o.LA)),
		AL: m.AA.Mul3(o.AL).Add(m.AL.Mul3(o.LL)),
		LA: m.LA.Mul3(o.AA).Add(m.LL.Mul3(o.LA)),
		LL: m.LA.Mul3(o.AL).Add(m.LL.Mul3(o.LL)),
	}
}

// Transpose returns the block transpose: swap and transpose each block.
func (m Mat) Transpose() Mat {
	return Mat{
		AA: m.AA.Transpose(),
		AL: m.LA.Transpose(),
		LA: m.AL.Transpose(),
		LL: m.LL.Transpose(),
	}
}

// OuterVec3 returns the outer product u * transpose(v), a 3x3 matrix with
// element (i,j) = u[i]*v[j].
func OuterVec3(u, v Vec3) Mat33 {
	var m Mat33
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m.Set(row, col, u[row]*v[col])
		}
	}
	return m
}

// Outer returns the spatial outer product a * transpose(b), a rank-1 6x6
// spatial matrix such that Outer(a,b).MulVec(x) == a.Scale(b.Dot(x)).
func Outer(a, b Vec) Mat {
	return Mat{
		AA: OuterVec3(a.Angular, b.Angular),
		AL: OuterVec3(a.Angular, b.Linear),
		LA: OuterVec3(a.Linear, b.Angular),
		LL: OuterVec3(a.Linear, b.Linear),
	}
}
