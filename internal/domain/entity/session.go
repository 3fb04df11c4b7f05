package entity

// SessionWrap значение, после которого счётчик сессий контроллера
// переполняется и начинается заново с нуля.
const SessionWrap = 5

// SessionState запоминает последнюю обработанную сессию, чтобы не
// классифицировать одну и ту же бутылку несколько раз подряд: датчик и
// счётчик контроллера обновляются быстрее, чем опрашивает цикл.
//
// Нулевое начальное значение совпадает с легитимным id после
// переполнения: первая реальная сессия 0 не вызовет отдельной
// классификации, пока не встретится ненулевой id. Так ведёт себя и
// сама линия, поведение оставлено без изменений.
type SessionState struct {
	LastProcessed int64
}

// ShouldProcess сообщает, нужно ли обрабатывать текущую сессию
func (s SessionState) ShouldProcess(current int64) bool {
	return current != s.LastProcessed
}

// MarkProcessed возвращает новое состояние после обработки сессии.
// На значении SessionWrap счётчик сбрасывается в ноль — защита от
// пересэмплирования, привязанная к разрядности счётчика контроллера.
// Сравнивается именно сохранённое значение, а не сырой id.
func (s SessionState) MarkProcessed(current int64) SessionState {
	if current == SessionWrap {
		return SessionState{LastProcessed: 0}
	}
	return SessionState{LastProcessed: current}
}
