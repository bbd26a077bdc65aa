package services

// 收藏集合保存在会话里，随浏览器存续，与数据库无关。
// ID 统一按字符串比较，容忍数据源的数字/字符串不一致。

// ToggleFavorite 翻转 id 的收藏状态，返回新集合和翻转后的状态
func ToggleFavorite(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...), false
		}
	}
	return append(ids, id), true
}

// HasFavorite 判断 id 是否已收藏
func HasFavorite(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// FavoriteSet 把收藏列表转成集合，供列表过滤使用
func FavoriteSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, v := range ids {
		set[v] = true
	}
	return set
}
