package circstat

// tValueTable holds the Hill (1970, "Algorithm 396: Student's
// t-quantiles", CACM 13(10)) quantile correction factors for the
// 1-σ-equivalent quantile, indexed by degrees of freedom 1..19.
// The factors inflate a naive (n-1)-normalized standard error to
// account for estimating the population mean by the sample mean;
// they are NOT the ordinary Student-t confidence multipliers.
//
// The values are fixed reference constants and must not be recomputed.
var tValueTable = [...]float64{
	1: 1.8394733927562799,
	2: 1.3224035682262103,
	3: 1.1978046912864673,
	4: 1.1424650980932523,
	5: 1.1112993008590089,
	6: 1.0913332519214189,
	7: 1.0774580800762166,
	8: 1.0672589736833817,
	9: 1.0594474783177483,
	10: 1.053273802733051,
	11: 1.0482721313740653,
	12: 1.0441378866779087,
	13: 1.0406635564353071,
	14: 1.0377028976401199,
	15: 1.0351498875115406,
	16: 1.0329257912610941,
	17: 1.0309709166064416,
	18: 1.029239186837585,
	19: 1.0276944692596461,
}

// TValue returns the Hill small-sample correction factor for dof
// degrees of freedom (dof = sample count − 1). Outside the tabulated
// range 1..19 the correction is exactly 1: dof 0 means a single sample
// with no dispersion to correct, and above 19 the bias is negligible.
//
// Complexity: O(1).
func TValue(dof int) float64 {
	if dof < 1 || dof >= len(tValueTable) {
		return 1
	}
	return tValueTable[dof]
}
