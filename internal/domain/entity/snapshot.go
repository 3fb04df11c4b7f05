package entity

// ControllerSnapshot одномоментное чтение флагов контроллера.
// Снимается заново на каждом цикле опроса, никогда не кэшируется.
type ControllerSnapshot struct {
	ExitRequested   bool  // контроллер просит завершить работу
	SensorTriggered bool  // датчик присутствия видит бутылку
	SessionID       int64 // счётчик сессий контроллера
}
