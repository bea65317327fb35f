//go:build tinygo

package hive

func arch(bool) string {
	return goarch()
}
