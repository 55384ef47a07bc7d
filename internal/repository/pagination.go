package repository

// ページング指定
type Pagination struct {
	Page  int
	Limit int
}

// 0以下や上限超えを既定値に寄せる
func (p Pagination) Normalize() Pagination {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
