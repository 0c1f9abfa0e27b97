package dto

import "github.com/shopspring/decimal"

// LotDTO un lote de inventario en el listado por bodega. CantidadLote es la
// cantidad disponible autoritativa según la base de datos.
type LotDTO struct {
	IDInventario   int64           `json:"id_inventario"`
	IDProducto     int64           `json:"id_producto"`
	IDFactura      int64           `json:"id_factura"`
	CantidadLote   decimal.Decimal `json:"cantidad_lote"`
	ProductoCodigo string          `json:"producto_codigo"`
	ProductoNombre string          `json:"producto_nombre"`
}

// LotListResponse lotes de una bodega.
type LotListResponse struct {
	Success    bool     `json:"success"`
	Inventario []LotDTO `json:"inventario"`
}

// TrasladoInput una línea del traslado solicitado.
type TrasladoInput struct {
	IDInventario int64           `json:"id_inventario"`
	IDProducto   int64           `json:"id_producto"`
	IDFactura    int64           `json:"id_factura"`
	Cantidad     decimal.Decimal `json:"cantidad"`
}

// TransferRequest body para POST /api/traslados.
type TransferRequest struct {
	IDBodegaOrigen  int64           `json:"id_bodega_origen"`
	IDBodegaDestino int64           `json:"id_bodega_destino"`
	IDUsuario       int64           `json:"id_usuario"`
	Observacion     string          `json:"observacion"`
	Traslados       []TrasladoInput `json:"traslados"`
}

// TransferLineDTO una línea de un traslado persistido.
type TransferLineDTO struct {
	IDInventario int64           `json:"id_inventario"`
	IDProducto   int64           `json:"id_producto"`
	IDFactura    int64           `json:"id_factura"`
	Cantidad     decimal.Decimal `json:"cantidad"`
}

// TransferDTO salida de un traslado.
type TransferDTO struct {
	ID              int64             `json:"id_traslado"`
	IDBodegaOrigen  int64             `json:"id_bodega_origen"`
	IDBodegaDestino int64             `json:"id_bodega_destino"`
	IDUsuario       int64             `json:"id_usuario"`
	Observacion     string            `json:"observacion"`
	Traslados       []TransferLineDTO `json:"traslados,omitempty"`
}

// TransferResponse respuesta de la creación de un traslado.
type TransferResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Traslado TransferDTO `json:"traslado"`
}

// TransferListResponse lista paginada de traslados.
type TransferListResponse struct {
	Success    bool          `json:"success"`
	Traslados  []TransferDTO `json:"traslados"`
	Pagination Pagination    `json:"paginacion"`
}
