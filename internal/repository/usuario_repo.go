package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodrigomoreli/brumas2/internal/model"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	// FindByLogin accepts username OR email (case-insensitive on email).
	// Inactive users are still returned: the caller distinguishes between
	// bad credentials and a disabled account.
	FindByLogin(ctx context.Context, login string) (*model.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context, skip, limit int) ([]model.Usuario, error)
	Save(ctx context.Context, u *model.Usuario) error
	DeleteComCascata(ctx context.Context, u *model.Usuario) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return traduz(r.db.WithContext(ctx).Create(u).Error)
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, traduz(err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByLogin(ctx context.Context, login string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = LOWER(?)", login, login).
		First(&u).Error
	if err != nil {
		return nil, traduz(err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, traduz(err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, traduz(err)
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context, skip, limit int) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&users).Error
	return users, traduz(err)
}

func (r *usuarioRepo) Save(ctx context.Context, u *model.Usuario) error {
	return traduz(r.db.WithContext(ctx).Save(u).Error)
}

// DeleteComCascata removes the user and everything attributed to them in one
// transaction. Child rows under the user's events go first (including lines
// other users added to those events), then lines the user added under events
// that survive, then the user's events, dimension rows and finally the user.
// A dimension row still referenced by another user's event aborts the whole
// transaction with ErrReferenciado; nothing is half-deleted.
func (r *usuarioRepo) DeleteComCascata(ctx context.Context, u *model.Usuario) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eventosDoUsuario := tx.Model(&model.Evento{}).
			Select("id").
			Where("id_usuario_criador = ?", u.ID)

		if err := tx.
			Where("id_evento IN (?) OR id_usuario_criador = ?", eventosDoUsuario, u.ID).
			Delete(&model.Despesa{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("id_evento IN (?) OR id_usuario_criador = ?", eventosDoUsuario, u.ID).
			Delete(&model.Degustacao{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_usuario_criador = ?", u.ID).Delete(&model.Evento{}).Error; err != nil {
			return err
		}

		dimensoes := []interface{}{
			&model.Assessoria{},
			&model.Buffet{},
			&model.Cidade{},
			&model.Cliente{},
			&model.Insumo{},
			&model.LocalEvento{},
			&model.TipoEvento{},
		}
		for _, m := range dimensoes {
			if err := tx.Where("id_usuario_criador = ?", u.ID).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(u).Error
	})
	return traduz(err)
}
