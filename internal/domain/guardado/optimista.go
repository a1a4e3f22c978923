package guardado

// Máquina de mutación optimista: aplica un cambio local antes de confirmar la
// persistencia y permite revertirlo si la llamada externa falla. Sustituye a
// los cierres ad hoc de instantánea/restauración: cada mutación obtiene un
// token y decide entre Confirmar o Revertir.

// Token identifica una mutación optimista pendiente.
type Token int64

// Optimista administra mutaciones optimistas sobre un estado T.
//
// La reversión restaura la instantánea previa a la mutación; si hubo otras
// mutaciones después, gana la última escritura (aceptable: el consumidor
// serializa las acciones).
type Optimista[T any] struct {
	estado     *T
	clonar     func(T) T
	pendientes map[Token]T
	siguiente  Token
}

// NewOptimista construye la máquina sobre un estado compartido. clonar debe
// devolver una copia profunda suficiente para que revertir no deje alias.
func NewOptimista[T any](estado *T, clonar func(T) T) *Optimista[T] {
	return &Optimista[T]{
		estado:     estado,
		clonar:     clonar,
		pendientes: make(map[Token]T),
	}
}

// Aplicar guarda una instantánea, aplica el parche al estado y devuelve el
// token con el que confirmar o revertir.
func (o *Optimista[T]) Aplicar(parche func(*T)) Token {
	o.siguiente++
	tok := o.siguiente
	o.pendientes[tok] = o.clonar(*o.estado)
	parche(o.estado)
	return tok
}

// Confirmar descarta la instantánea y, si el servidor devolvió el registro
// definitivo, reconcilia el estado con él.
func (o *Optimista[T]) Confirmar(tok Token, reconciliar func(*T)) {
	delete(o.pendientes, tok)
	if reconciliar != nil {
		reconciliar(o.estado)
	}
}

// Revertir restaura la instantánea tomada al aplicar la mutación.
func (o *Optimista[T]) Revertir(tok Token) {
	previo, ok := o.pendientes[tok]
	if !ok {
		return
	}
	delete(o.pendientes, tok)
	*o.estado = previo
}

// Pendientes devuelve cuántas mutaciones siguen sin confirmar ni revertir.
func (o *Optimista[T]) Pendientes() int {
	return len(o.pendientes)
}
