// SPDX-License-Identifier: MIT
package list_test

import (
	"testing"

	"github.com/katalvlaran/s21kit/list"
)

func BenchmarkPushBackPopFront(b *testing.B) {
	l := list.New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
		if l.Len() > 1024 {
			_, _ = l.PopFront()
		}
	}
}

func BenchmarkAll(b *testing.B) {
	l := list.New[int]()
	for i := 0; i < 4096; i++ {
		l.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s int
		for v := range l.All() {
			s += v
		}
		_ = s
	}
}
