package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EntidadUC  *usecase.EntidadUseCase
	FacturaUC  *usecase.FacturaUseCase
	ArregloUC  *usecase.ArregloUseCase
	GuardadoUC *usecase.GuardadoUseCase
	NotaUC     *usecase.NotaUseCase
	AvisoUC    *usecase.AvisoUseCase
	PedidoUC   *usecase.PedidoUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Entidades (proveedores y clientes)
	entidades := api.Group("/entidades")
	entidadHandler := NewEntidadHandler(deps.EntidadUC)
	entidades.Get("/", entidadHandler.List)
	entidades.Post("/", entidadHandler.Create)
	entidades.Get("/:id", entidadHandler.GetByID)
	entidades.Put("/:id", entidadHandler.Update)
	entidades.Delete("/:id", entidadHandler.Delete)

	// Facturas (archivador)
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	entidades.Get("/:id/facturas", facturaHandler.ListForEntidad)
	facturas := api.Group("/facturas")
	facturas.Get("/", facturaHandler.List)
	facturas.Post("/", facturaHandler.Upload)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Get("/:id/documento", facturaHandler.Documento)
	facturas.Put("/:id", facturaHandler.Update)
	facturas.Delete("/:id", facturaHandler.Delete)

	// Libro de arreglos
	arreglos := api.Group("/arreglos")
	arregloHandler := NewArregloHandler(deps.ArregloUC)
	arreglos.Get("/", arregloHandler.List)
	arreglos.Post("/", arregloHandler.Create)
	arreglos.Get("/:id", arregloHandler.GetByID)
	arreglos.Put("/:id", arregloHandler.Update)
	arreglos.Delete("/:id", arregloHandler.Delete)

	// Resúmenes
	resumenes := api.Group("/resumenes")
	resumenes.Get("/facturas", facturaHandler.Resumen)
	resumenes.Get("/facturas/pdf", facturaHandler.ResumenPDF)
	resumenes.Get("/arreglos", arregloHandler.ResumenTrimestral)
	resumenes.Get("/arreglos/pdf", arregloHandler.ResumenPDF)
	resumenes.Get("/arreglos/mensual", arregloHandler.ResumenMensual)
	resumenes.Get("/arreglos/reparto", arregloHandler.Reparto)

	// Catálogo de guardado
	guardado := api.Group("/guardado")
	guardadoHandler := NewGuardadoHandler(deps.GuardadoUC)
	guardado.Get("/lugares", guardadoHandler.ListLugares)
	guardado.Post("/lugares", guardadoHandler.CreateLugar)
	guardado.Put("/lugares/:id", guardadoHandler.UpdateLugar)
	guardado.Delete("/lugares/:id", guardadoHandler.DeleteLugar)
	guardado.Post("/lugares/:id/compartimentos", guardadoHandler.CreateCompartimento)
	guardado.Put("/compartimentos/:id", guardadoHandler.UpdateCompartimento)
	guardado.Delete("/compartimentos/:id", guardadoHandler.DeleteCompartimento)
	guardado.Get("/productos", guardadoHandler.ListProductos)
	guardado.Post("/productos", guardadoHandler.CreateProducto)
	guardado.Get("/productos/:id", guardadoHandler.GetProducto)
	guardado.Put("/productos/:id", guardadoHandler.UpdateProducto)
	guardado.Delete("/productos/:id", guardadoHandler.DeleteProducto)
	guardado.Post("/productos/:id/asignaciones", guardadoHandler.CreateAsignacion)
	guardado.Put("/productos/:id/asignaciones/:aid", guardadoHandler.UpdateAsignacion)
	guardado.Delete("/productos/:id/asignaciones/:aid", guardadoHandler.DeleteAsignacion)
	guardado.Post("/productos/:id/articulos", guardadoHandler.CreateArticulo)
	guardado.Put("/productos/:id/articulos/:aid", guardadoHandler.UpdateArticulo)
	guardado.Delete("/productos/:id/articulos/:aid", guardadoHandler.DeleteArticulo)

	// Notas
	notas := api.Group("/notas")
	notaHandler := NewNotaHandler(deps.NotaUC)
	notas.Get("/", notaHandler.List)
	notas.Post("/", notaHandler.Create)
	notas.Get("/:id", notaHandler.GetByID)
	notas.Put("/:id", notaHandler.Update)
	notas.Delete("/:id", notaHandler.Delete)

	// Avisos de llamada
	avisos := api.Group("/avisos")
	avisoHandler := NewAvisoHandler(deps.AvisoUC)
	avisos.Get("/", avisoHandler.List)
	avisos.Post("/", avisoHandler.Create)
	avisos.Put("/:id", avisoHandler.Update)
	avisos.Put("/:id/pendiente", avisoHandler.SetPendiente)
	avisos.Delete("/:id", avisoHandler.Delete)

	// Pedidos a proveedor
	pedidos := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Delete("/:id", pedidoHandler.Delete)
}
