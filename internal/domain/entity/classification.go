package entity

// Verdict итог классификации кадра
type Verdict string

const (
	LabelPresent Verdict = "label_present" // этикетка найдена
	LabelMissing Verdict = "label_missing" // этикетки нет, бутылка бракуется
)

// Калибровка под линию: диапазон площадей отсекает и мелкие квадраты
// шума, и контур всей бутылки.
const (
	LabelVertices = 4
	MinLabelArea  = 1000.0
	MaxLabelArea  = 20000.0
)

// LabelCandidate контур, упрощённый до многоугольника — кандидат на этикетку
type LabelCandidate struct {
	Vertices  int     // число вершин после упрощения
	Perimeter float64 // длина исходного контура
	Area      float64 // площадь, охваченная контуром
}

// Qualifies проверяет, подходит ли кандидат под геометрию этикетки.
// Диапазон площадей строгий с обеих сторон.
func (c LabelCandidate) Qualifies() bool {
	return c.Vertices == LabelVertices && c.Area > MinLabelArea && c.Area < MaxLabelArea
}

// Classification хранит итог анализа кадра.
type Classification struct {
	Verdict   Verdict
	Candidate *LabelCandidate // первый подошедший кандидат, nil если этикетки нет
}

// LabelFound сообщает, найдена ли этикетка
func (c *Classification) LabelFound() bool {
	return c.Verdict == LabelPresent
}
