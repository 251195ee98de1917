package nn

import "math"

// Built-in activation names. Every name resolves through the registry, so
// the set stays closed unless a caller registers more.
const (
	FnIdentity = "identity"
	FnSigmoid  = "sigmoid"
	FnTanh     = "tanh"
	FnRelu     = "relu"
	FnGaussian = "gaussian"
	FnSin      = "sin"
	FnCos      = "cos"
	FnAbs      = "abs"
	FnSquare   = "square"
)

func initializeBuiltInActivations() {
	MustRegisterActivation(FnIdentity, func(x float64) float64 { return x })
	MustRegisterActivation(FnSigmoid, func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	})
	MustRegisterActivation(FnTanh, math.Tanh)
	MustRegisterActivation(FnRelu, func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return x
	})
	MustRegisterActivation(FnGaussian, func(x float64) float64 {
		return math.Exp(-x * x / 2)
	})
	MustRegisterActivation(FnSin, math.Sin)
	MustRegisterActivation(FnCos, math.Cos)
	MustRegisterActivation(FnAbs, math.Abs)
	MustRegisterActivation(FnSquare, func(x float64) float64 { return x * x })
}
