package solver

import (
	"github.com/skm-dev/gravstream/internal/gravity"
)

// Cash-Karp 4(5) coefficients: six stages yielding a fifth-order solution
// with an embedded fourth-order error estimate.
var cashKarpTableau = tableau{
	a: [][]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{3.0 / 10.0, -9.0 / 10.0, 6.0 / 5.0},
		{-11.0 / 54.0, 5.0 / 2.0, -70.0 / 27.0, 35.0 / 27.0},
		{1631.0 / 55296.0, 175.0 / 512.0, 575.0 / 13824.0, 44275.0 / 110592.0, 253.0 / 4096.0},
	},
	b: []float64{
		37.0 / 378.0, 0, 250.0 / 621.0, 125.0 / 594.0, 0, 512.0 / 1771.0,
	},
	e: []float64{
		37.0/378.0 - 2825.0/27648.0,
		0,
		250.0/621.0 - 18575.0/48384.0,
		125.0/594.0 - 13525.0/55296.0,
		-277.0 / 14336.0,
		512.0/1771.0 - 1.0/4.0,
	},
}

// CashKarp is the adaptive Cash-Karp 4(5) embedded pair.
type CashKarp struct {
	*embedded
}

func NewCashKarp(n int, dt float64, force *gravity.Evaluator, cfg AdaptiveConfig) *CashKarp {
	return &CashKarp{newEmbedded(cashKarpTableau, n, dt, force, cfg)}
}
