package asm

// Coefficient returns the Petersen-matrix entry for one process row and one
// component column, parameterized by the stoichiometric constants. Rows and
// columns follow the Proc* and Idx* index order. Entries not listed in the
// published ASM1 table are zero.
func Coefficient(process, component int, p StoichiometricParameters) float64 {
	switch process {
	case ProcAerobicGrowthH:
		switch component {
		case IdxSS:
			return -1 / p.YH
		case IdxXBH:
			return 1
		case IdxSO:
			return -(1 - p.YH) / p.YH
		case IdxSNH:
			return -p.IXB
		case IdxSALK:
			return -p.IXB / 14
		}

	case ProcAnoxicGrowthH:
		switch component {
		case IdxSS:
			return -1 / p.YH
		case IdxXBH:
			return 1
		case IdxSNO:
			return -(1 - p.YH) / (2.86 * p.YH)
		case IdxSNH:
			return -p.IXB
		case IdxSALK:
			return (1-p.YH)/(14*2.86*p.YH) - p.IXB/14
		}

	case ProcAerobicGrowthA:
		switch component {
		case IdxXBA:
			return 1
		case IdxSO:
			return -(4.57 - p.YA) / p.YA
		case IdxSNO:
			return 1 / p.YA
		case IdxSNH:
			return -p.IXB - 1/p.YA
		case IdxSALK:
			return -p.IXB/14 - 1/(7*p.YA)
		}

	case ProcDecayH:
		switch component {
		case IdxXS:
			return 1 - p.FP
		case IdxXBH:
			return -1
		case IdxXP:
			return p.FP
		case IdxXND:
			return p.IXB - p.FP*p.IXP
		}

	case ProcDecayA:
		switch component {
		case IdxXS:
			return 1 - p.FP
		case IdxXBA:
			return -1
		case IdxXP:
			return p.FP
		case IdxXND:
			return p.IXB - p.FP*p.IXP
		}

	case ProcAmmonification:
		switch component {
		case IdxSNH:
			return 1
		case IdxSND:
			return -1
		case IdxSALK:
			return 1.0 / 14
		}

	case ProcHydrolysisX:
		switch component {
		case IdxSS:
			return 1
		case IdxXS:
			return -1
		}

	case ProcHydrolysisXND:
		switch component {
		case IdxSND:
			return 1
		case IdxXND:
			return -1
		}
	}
	return 0
}

// BuildMatrix materializes the full 8x13 Petersen matrix. Every cell equals
// the corresponding Coefficient call.
func BuildMatrix(p StoichiometricParameters) [][]float64 {
	m := make([][]float64, NumProcesses)
	for i := range m {
		row := make([]float64, NumComponents)
		for j := range row {
			row[j] = Coefficient(i, j, p)
		}
		m[i] = row
	}
	return m
}
