package utils

func ReverseForEach[T any](slice []T, fc func(idx int, element T)) {
	for i := len(slice) - 1; i >= 0; i-- {
		fc(i, slice[i])
	}
}
