package handlers

import "testing"

func TestLikeCountAfterToggle(t *testing.T) {
	cases := []struct {
		current  int
		nowLiked bool
		want     int
	}{
		{0, true, 1},
		{5, true, 6},
		{5, false, 4},
		// 计数不会降到 0 以下
		{0, false, 0},
	}
	for _, c := range cases {
		if got := likeCountAfterToggle(c.current, c.nowLiked); got != c.want {
			t.Errorf("likeCountAfterToggle(%d, %v) = %d, want %d", c.current, c.nowLiked, got, c.want)
		}
	}
}
