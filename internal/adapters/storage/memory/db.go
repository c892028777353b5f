package memory

import (
	"sync"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/domain/users"
)

type catToy struct {
	catID string
	toyID string
}

// DB es el estado compartido por todos los repos in-memory.
// Un solo mutex: borrar un gato y su cascada es una sola sección crítica.
type DB struct {
	mu sync.RWMutex

	users    map[string]users.User
	cats     map[string]cats.Cat
	toys     map[string]toys.Toy
	catToys  map[catToy]struct{}
	feedings map[string]feedings.Feeding
	photos   map[string]photos.Photo

	// orden de inserción para listados estables
	seq      int64
	insertAt map[string]int64
}

func NewDB() *DB {
	return &DB{
		users:    make(map[string]users.User),
		cats:     make(map[string]cats.Cat),
		toys:     make(map[string]toys.Toy),
		catToys:  make(map[catToy]struct{}),
		feedings: make(map[string]feedings.Feeding),
		photos:   make(map[string]photos.Photo),
		insertAt: make(map[string]int64),
	}
}

// mark registra el orden de inserción; requiere mu tomado en escritura.
func (db *DB) mark(id string) {
	db.seq++
	db.insertAt[id] = db.seq
}

// deleteCatLocked borra el gato y todo lo que depende de él; requiere mu en escritura.
func (db *DB) deleteCatLocked(catID string) {
	delete(db.cats, catID)
	delete(db.insertAt, catID)

	for id, f := range db.feedings {
		if f.CatID == catID {
			delete(db.feedings, id)
			delete(db.insertAt, id)
		}
	}
	for id, p := range db.photos {
		if p.CatID == catID {
			delete(db.photos, id)
			delete(db.insertAt, id)
		}
	}
	for k := range db.catToys {
		if k.catID == catID {
			delete(db.catToys, k)
		}
	}
}
