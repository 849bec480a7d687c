package hydro

import "gonum.org/v1/gonum/mat"

// svdTol scales the largest singular value to decide which singular
// values are treated as zero when forming the pseudo-inverse.
const svdTol = 1e-12

// invert6 computes the inverse of a 6x6 matrix through its singular
// value decomposition, so that m * invert6(m) is the identity to
// numerical tolerance for any well-conditioned m.
//
// A singular matrix degrades to the Moore-Penrose pseudo-inverse
// instead of failing: singular values below svdTol times the largest
// are dropped. Callers that need a true inverse must check conditioning
// before configuring the model.
func invert6(m Matrix6) Matrix6 {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		// Factorization only fails to converge for pathological input;
		// fall back to the zero matrix, the pseudo-inverse of zero.
		return ZeroMatrix6()
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	tol := svdTol * sigma[0]
	sigmaInv := mat.NewDense(6, 6, nil)
	for i, s := range sigma {
		if s > tol {
			sigmaInv.Set(i, i, 1/s)
		}
	}

	// inv = V * Sigma^+ * U^T
	var tmp, inv mat.Dense
	tmp.Mul(&v, sigmaInv)
	inv.Mul(&tmp, u.T())
	return &inv
}
