package infra

// pdf.go — service-order PDF generation using go-pdf/fpdf.
// Renders an A5 order sheet for a ticket: workshop header, ticket code
// and date, client and vehicle block, estimated window, assignment block
// (lot / supervisor / operator) and the current estado.

import (
	"bytes"
	"fmt"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"github.com/go-pdf/fpdf"
)

// OrdenServicio bundles everything the PDF needs; the handler resolves
// the pieces so this stays a pure renderer.
type OrdenServicio struct {
	Ticket   *model.Ticket
	Cliente  *model.Cliente
	Vehiculo *model.Vehiculo
}

// GenerarOrdenServicioPDF renders the service order and returns the raw
// PDF bytes for streaming to the client.
func GenerarOrdenServicioPDF(orden OrdenServicio) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "SIGEMAVE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Orden de Servicio", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Ticket info ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Ticket %s", orden.Ticket.CodTicket), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Fecha: %s", orden.Ticket.Fecha.Format("02/01/2006")), "", 1, "L", false, 0, "")
	if orden.Ticket.HoraIniEstimada != nil {
		ventana := *orden.Ticket.HoraIniEstimada
		if orden.Ticket.HoraFinEstimada != nil {
			ventana += " - " + *orden.Ticket.HoraFinEstimada
		}
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Horario estimado: %s", ventana), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Estado: %s", model.NombreEstadoTicket(orden.Ticket.Estado)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Cliente ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "Cliente", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	nombre := orden.Cliente.Nombre + " " + orden.Cliente.ApePaterno
	if orden.Cliente.ApeMaterno != nil {
		nombre += " " + *orden.Cliente.ApeMaterno
	}
	pdf.CellFormat(contentW, 5, nombre, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("DNI: %s", orden.Cliente.DNICliente), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Vehículo ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "Vehículo", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%s %s - %s", orden.Vehiculo.Marca, orden.Vehiculo.Modelo, orden.Vehiculo.Placa), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Asignación ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "Asignación", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	lote := "Sin lote"
	if orden.Ticket.CodLoteTicket != nil {
		lote = *orden.Ticket.CodLoteTicket
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Lote: %s", lote), "", 1, "L", false, 0, "")
	supervisor := "Por asignar"
	if orden.Ticket.IDSupervisor != nil {
		supervisor = fmt.Sprintf("Empleado N° %d", *orden.Ticket.IDSupervisor)
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Supervisor: %s", supervisor), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}
