// Package animalform implementa el formulario de actualización de un animal
// como una máquina de estados que se maneja por eventos (Load, Set, Submit).
package animalform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ganaderia-dashboard/internal/platform/httpclient"

	"golang.org/x/sync/errgroup"
)

type State int

const (
	StateLoading State = iota
	StateError
	StateReady
	StateSubmitting
	StateSuccess
	StateSubmitError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateSubmitError:
		return "submit_error"
	default:
		return "unknown"
	}
}

const (
	SuccessMessage      = "El animal ha sido actualizado exitosamente."
	SubmitErrorFallback = "Ocurrió un error al intentar actualizar el animal."
	LoadErrorMessage    = "No se pudieron cargar los datos iniciales (animal o grupos). Verifique la conexión o las APIs."
)

var (
	ErrNotReady     = errors.New("el formulario no está listo")
	ErrUnknownField = errors.New("campo desconocido")
)

// Controller no es seguro para uso concurrente: los eventos llegan de a uno.
type Controller struct {
	gw        Gateway
	id        string
	validator *Validator

	state     State
	values    Values
	groups    []Group
	families  []FamilyOption
	fieldErrs FieldErrors
	message   string

	// familiesFor es el último id_gru para el que se pidieron familias.
	familiesFor *string
}

func NewController(gw Gateway, animalID string, now func() time.Time) *Controller {
	return &Controller{
		gw:        gw,
		id:        animalID,
		validator: NewValidator(now),
		state:     StateLoading,
	}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Values() Values { return c.values }
func (c *Controller) Groups() []Group { return c.groups }
func (c *Controller) Families() []FamilyOption { return c.families }
func (c *Controller) FieldErrors() FieldErrors { return c.fieldErrs }
func (c *Controller) Message() string { return c.message }

// Load pide en paralelo el animal y la lista de grupos.
// Cualquier falla del animal deja el formulario en StateError; un status
// no-2xx en los grupos solo deja la lista vacía.
func (c *Controller) Load(ctx context.Context) error {
	c.state = StateLoading
	c.message = ""

	var (
		rec    Record
		groups []Group
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := c.gw.GetAnimal(gctx, c.id)
		if err != nil {
			return err
		}
		rec = r
		return nil
	})
	g.Go(func() error {
		gs, err := c.gw.ListGroups(gctx)
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			gs, err = []Group{}, nil
		}
		if err != nil {
			return err
		}
		groups = gs
		return nil
	})

	if err := g.Wait(); err != nil {
		c.state = StateError
		c.message = loadErrorMessage(err)
		return err
	}

	if groups == nil {
		groups = []Group{}
	}
	c.groups = groups
	c.values = ValuesFromRecord(rec)
	c.state = StateReady

	c.groupChanged(ctx)
	return nil
}

func loadErrorMessage(err error) string {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("No se pudieron obtener los datos del animal. Código: %d", he.StatusCode)
	}
	return LoadErrorMessage
}

// SetGroup cambia el grupo y recarga las familias si el valor es distinto.
func (c *Controller) SetGroup(ctx context.Context, groupID string) error {
	if c.state == StateLoading || c.state == StateError || c.state == StateSubmitting {
		return ErrNotReady
	}
	c.values.GroupID = groupID
	c.groupChanged(ctx)
	return nil
}

// groupChanged es el único punto que dispara la carga de familias.
func (c *Controller) groupChanged(ctx context.Context) {
	gid := c.values.GroupID
	if c.familiesFor != nil && *c.familiesFor == gid {
		return
	}
	c.familiesFor = &gid

	if gid == "" {
		c.families = []FamilyOption{}
		c.values.FamilyCode = ""
		delete(c.fieldErrs, "codigo_fam")
		return
	}

	opts, err := c.gw.FamilyOptions(ctx, gid)
	if err != nil {
		// sin opciones no se sabe si la familia sigue siendo válida: se conserva
		// y el próximo SetGroup vuelve a pedirlas
		c.families = []FamilyOption{}
		c.familiesFor = nil
		return
	}
	if opts == nil {
		opts = []FamilyOption{}
	}
	c.families = opts

	// se conserva la familia actual solo si pertenece al grupo nuevo
	keep := false
	for _, f := range c.families {
		if f.Value == c.values.FamilyCode {
			keep = true
			break
		}
	}
	if !keep {
		c.values.FamilyCode = ""
	}
}

// Set edita un campo por su nombre JSON. id_gru pasa por SetGroup.
func (c *Controller) Set(ctx context.Context, field, value string) error {
	if field == "id_gru" {
		return c.SetGroup(ctx, value)
	}
	if c.state == StateLoading || c.state == StateError || c.state == StateSubmitting {
		return ErrNotReady
	}

	v := &c.values
	switch field {
	case "codigo_ani":
		v.Code = value
	case "nombre_ani":
		v.Name = value
	case "chip_ani":
		v.Chip = value
	case "codigo_fam":
		v.FamilyCode = value
	case "sexo_ani":
		v.Sex = value
	case "fechaPalpacion_ani":
		v.PalpationDate = value
	case "tiempoGestacion_ani":
		v.GestationTime = value
	case "peso_ani":
		v.Weight = value
	case "arete_ani":
		v.EarTag = value
	case "fechaNacimiento_ani":
		v.BirthDate = value
	case "fechaVacunacion_ani":
		v.VaccinationDate = value
	case "status_ani":
		v.Status = value
	case "precio_ani":
		v.Price = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Submit valida y envía el PUT. Con errores de validación el estado no cambia
// y se devuelve *ValidationError.
func (c *Controller) Submit(ctx context.Context) error {
	switch c.state {
	case StateReady, StateSubmitError, StateSuccess:
	default:
		return ErrNotReady
	}

	if errs := c.validator.Validate(c.values); len(errs) > 0 {
		c.fieldErrs = errs
		return &ValidationError{Fields: errs}
	}
	c.fieldErrs = nil

	c.state = StateSubmitting
	c.message = ""

	if err := c.gw.UpdateAnimal(ctx, c.id, BuildPayload(c.values)); err != nil {
		c.state = StateSubmitError
		c.message = submitErrorMessage(err)
		return err
	}

	c.state = StateSuccess
	c.message = SuccessMessage
	return nil
}

func submitErrorMessage(err error) string {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		if m := he.ServerMessage(); m != "" {
			return m
		}
	}
	return SubmitErrorFallback
}
