package entities

import (
	"fmt"
	"time"
)

// Order is a service order (orden). It is a tagged union over Type: exactly the
// details pointer matching Type is set, the others are nil.
//
// Client and Device are point-in-time copies taken when the order is created.
// They are not references: editing the client afterwards does not change them.
//
// Storage model:
//   - collection: ordenes
//   - key: the display ID (e.g. OMAN007), also stored in the id attribute
//   - GSI userId-index: userId
type Order struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Number    int64          `json:"numero"`
	Type      OrderType      `json:"tipo"`
	Client    ClientSnapshot `json:"cliente"`
	Device    Device         `json:"equipo"`
	CreatedAt time.Time      `json:"fecha_creacion"`
	UpdatedAt time.Time      `json:"fecha_actualizacion"`

	Garantia      *WarrantyDetails    `json:"garantia,omitempty"`
	Mantenimiento *MaintenanceDetails `json:"mantenimiento,omitempty"`
	Diagnostico   *DiagnosticDetails  `json:"diagnostico,omitempty"`
	Entrega       *DeliveryDetails    `json:"entrega,omitempty"`
}

// ClientSnapshot is the copy of the client embedded in an order.
type ClientSnapshot struct {
	ID         string `json:"id" dynamodbav:"id"`
	Name       string `json:"nombre" dynamodbav:"nombre"`
	NationalID string `json:"cedula" dynamodbav:"cedula"`
	Email      string `json:"email" dynamodbav:"email"`
	Phone      string `json:"telefono" dynamodbav:"telefono"`
	Address    string `json:"direccion" dynamodbav:"direccion"`
}

// WarrantyDetails is a warranty claim (garantia).
type WarrantyDetails struct {
	PurchaseDate       string `json:"fecha_compra" dynamodbav:"fechaCompra"`
	ProblemDescription string `json:"descripcion_problema" dynamodbav:"descripcionProblema"`
	WarrantyDuration   string `json:"duracion_garantia" dynamodbav:"duracionGarantia"`
	WarrantyConditions string `json:"condiciones_garantia" dynamodbav:"condicionesGarantia"`
}

type PartUsage struct {
	Part     string `json:"repuesto" dynamodbav:"repuesto"`
	Quantity int    `json:"cantidad" dynamodbav:"cantidad"`
}

// MaintenanceDetails is a maintenance order (mantenimiento).
type MaintenanceDetails struct {
	Tasks               []string    `json:"tareas" dynamodbav:"tareas"`
	PartsUsed           []PartUsage `json:"repuestos" dynamodbav:"repuestos"`
	ConditionBefore     []string    `json:"estado_inicial" dynamodbav:"estadoInicial"`
	ConditionAfter      []string    `json:"estado_final" dynamodbav:"estadoFinal"`
	WarrantyDuration    string      `json:"garantia_duracion" dynamodbav:"garantiaDuracion"`
	WarrantyDescription string      `json:"garantia_descripcion" dynamodbav:"garantiaDescripcion"`
}

// DiagnosticDetails is a diagnostic order (diagnostico).
type DiagnosticDetails struct {
	InitialObservations string   `json:"observaciones_iniciales" dynamodbav:"observacionesIniciales"`
	TestsPerformed      []string `json:"pruebas_realizadas" dynamodbav:"pruebasRealizadas"`
	ProbableCauses      []string `json:"causas_probables" dynamodbav:"causasProbables"`
	MachineCounter      *int64   `json:"contador_maquina,omitempty" dynamodbav:"contadorMaquina,omitempty"`
	FinalDiagnosis      string   `json:"diagnostico_final" dynamodbav:"diagnosticoFinal"`
	Recommendations     string   `json:"recomendaciones" dynamodbav:"recomendaciones"`
}

// DeliveryDetails is a delivery order (entrega). An order is completed only when
// it is a delivery the client validated.
type DeliveryDetails struct {
	DeliveryDate      string `json:"fecha_entrega" dynamodbav:"fechaEntrega"`
	FinalObservations string `json:"observaciones_finales" dynamodbav:"observacionesFinales"`
	ClientSignature   string `json:"firma_cliente" dynamodbav:"firmaCliente"`
	ClientValidated   bool   `json:"validacion_cliente" dynamodbav:"validacionCliente"`
	RepairNotes       string `json:"notas_reparacion,omitempty" dynamodbav:"notasReparacion,omitempty"`
	PartsNotes        string `json:"notas_repuestos,omitempty" dynamodbav:"notasRepuestos,omitempty"`
	DocumentsNotes    string `json:"notas_documentos,omitempty" dynamodbav:"notasDocumentos,omitempty"`
}

// OrderVisitor has one method per order type. Every consumer that must handle all
// order types implements it, so adding a type breaks compilation until each
// consumer handles the new variant.
type OrderVisitor interface {
	VisitGarantia(o Order, d *WarrantyDetails)
	VisitMantenimiento(o Order, d *MaintenanceDetails)
	VisitDiagnostico(o Order, d *DiagnosticDetails)
	VisitEntrega(o Order, d *DeliveryDetails)
}

// Accept dispatches o to the visitor method of its type.
func (o Order) Accept(v OrderVisitor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	switch o.Type {
	case OrderTypeGarantia:
		v.VisitGarantia(o, o.Garantia)
	case OrderTypeMantenimiento:
		v.VisitMantenimiento(o, o.Mantenimiento)
	case OrderTypeDiagnostico:
		v.VisitDiagnostico(o, o.Diagnostico)
	case OrderTypeEntrega:
		v.VisitEntrega(o, o.Entrega)
	}
	return nil
}

// Validate checks the union invariant: a known type and only its details set.
func (o Order) Validate() error {
	if !o.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrderType, o.Type)
	}
	set := map[OrderType]bool{
		OrderTypeGarantia:      o.Garantia != nil,
		OrderTypeMantenimiento: o.Mantenimiento != nil,
		OrderTypeDiagnostico:   o.Diagnostico != nil,
		OrderTypeEntrega:       o.Entrega != nil,
	}
	if !set[o.Type] {
		return fmt.Errorf("%w: missing %s details", ErrInvalidOrder, o.Type)
	}
	for t, present := range set {
		if t != o.Type && present {
			return fmt.Errorf("%w: %s order carries %s details", ErrInvalidOrder, o.Type, t)
		}
	}
	return nil
}

// Completed reports whether the order is a client-validated delivery.
func (o Order) Completed() bool {
	return o.Type == OrderTypeEntrega && o.Entrega != nil && o.Entrega.ClientValidated
}
