package boundary

// SegmentsIntersect solves p.A + t(p.B-p.A) = q.A + u(q.B-q.A) and reports
// an intersection when both t and u lie in [0, 1]. Parallel and collinear
// segments (zero denominator) never intersect.
func SegmentsIntersect(p, q Segment) bool {
	x1, y1, x2, y2 := p.A.X, p.A.Y, p.B.X, p.B.Y
	x3, y3, x4, y4 := q.A.X, q.A.Y, q.B.X, q.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return false
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
