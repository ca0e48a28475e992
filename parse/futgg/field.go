package futgg

// Field 表示一次字段抽取的结果：要么抽取成功(Some)，要么退化为该字段约定的空默认值(Default)
type Field[T any] struct {
	value T
	found bool
}

// 抽取成功
func Some[T any](v T) Field[T] {
	return Field[T]{value: v, found: true}
}

// 目标结构缺失，携带字段的空默认值
func Default[T any](empty T) Field[T] {
	return Field[T]{value: empty}
}

func (f Field[T]) Value() T {
	return f.value
}

func (f Field[T]) Found() bool {
	return f.found
}
