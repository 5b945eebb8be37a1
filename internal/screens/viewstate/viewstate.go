package viewstate

import "sync"

// Status фаза экрана
type Status int

const (
	Idle Status = iota
	Loading
	Content
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Content:
		return "content"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// State снимок состояния экрана; Data сохраняется при Loading и Error
type State[T any] struct {
	Status  Status
	Data    T
	Message string
}

// Listener получает каждое новое состояние
type Listener[T any] func(State[T])

// Holder потокобезопасный контейнер состояния экрана с подписчиками
type Holder[T any] struct {
	mu        sync.RWMutex
	state     State[T]
	listeners map[int]Listener[T]
	nextID    int
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{listeners: make(map[int]Listener[T])}
}

// Get текущее состояние
func (h *Holder[T]) Get() State[T] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Subscribe добавляет слушателя и сразу передаёт ему текущее состояние.
// Возвращает функцию отписки
func (h *Holder[T]) Subscribe(fn Listener[T]) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	current := h.state
	h.mu.Unlock()

	fn(current)

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

func (h *Holder[T]) SetIdle() {
	h.update(func(s *State[T]) {
		s.Status = Idle
		s.Message = ""
	})
}

func (h *Holder[T]) SetLoading() {
	h.update(func(s *State[T]) {
		s.Status = Loading
		s.Message = ""
	})
}

// SetLoadingMessage загрузка с текстом для строки статуса
func (h *Holder[T]) SetLoadingMessage(msg string) {
	h.update(func(s *State[T]) {
		s.Status = Loading
		s.Message = msg
	})
}

func (h *Holder[T]) SetContent(data T) {
	h.update(func(s *State[T]) {
		s.Status = Content
		s.Data = data
		s.Message = ""
	})
}

// SetContentMessage контент с информационным сообщением
func (h *Holder[T]) SetContentMessage(data T, msg string) {
	h.update(func(s *State[T]) {
		s.Status = Content
		s.Data = data
		s.Message = msg
	})
}

func (h *Holder[T]) SetError(msg string) {
	h.update(func(s *State[T]) {
		s.Status = Error
		s.Message = msg
	})
}

// update меняет состояние под блокировкой и уведомляет слушателей вне её
func (h *Holder[T]) update(fn func(s *State[T])) {
	h.mu.Lock()
	fn(&h.state)
	next := h.state
	listeners := make([]Listener[T], 0, len(h.listeners))
	for _, l := range h.listeners {
		listeners = append(listeners, l)
	}
	h.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
}
