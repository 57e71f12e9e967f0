//go:build !windows && !darwin

package hidpi

func probe() (Scaler, error) {
	return fixed{}, nil
}
