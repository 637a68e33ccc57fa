package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicobh12/inventory-app/internal/dto"
	"github.com/nicobh12/inventory-app/internal/model"
	"github.com/nicobh12/inventory-app/internal/repository"
)

// MaestrosService agrupa las altas de datos maestros: clientes, proveedores,
// productos con sus presentaciones y materias primas. Operaciones de una sola
// tabla (más presentaciones anidadas); las reglas multi-tabla viven en los
// servicios del libro mayor.
type MaestrosService interface {
	CrearCliente(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	CrearProveedor(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	CrearMateriaPrima(ctx context.Context, req dto.CrearMateriaPrimaRequest) (*model.MateriaPrima, error)
	CrearDepartamento(ctx context.Context, nombre string) (*model.Departamento, error)
	CrearMunicipio(ctx context.Context, departamentoID int64, nombre string) (*model.Municipio, error)
	ListarMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error)
	ObtenerConfiguracion(ctx context.Context, clave string) (string, error)
	ActualizarConfiguracion(ctx context.Context, clave, valor string) error
}

type maestrosService struct {
	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	productos   repository.ProductoRepository
	materias    repository.MateriaPrimaRepository
	ubicaciones repository.UbicacionRepository
	config      repository.ConfigRepository
}

func NewMaestrosService(
	clientes repository.ClienteRepository,
	proveedores repository.ProveedorRepository,
	productos repository.ProductoRepository,
	materias repository.MateriaPrimaRepository,
	ubicaciones repository.UbicacionRepository,
	config repository.ConfigRepository,
) MaestrosService {
	return &maestrosService{
		clientes:    clientes,
		proveedores: proveedores,
		productos:   productos,
		materias:    materias,
		ubicaciones: ubicaciones,
		config:      config,
	}
}

func (s *maestrosService) CrearCliente(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	if req.NombreComercial == "" {
		return nil, errors.New("nombre_comercial es obligatorio")
	}
	if req.Departamento == "" || req.Municipio == "" {
		return nil, errors.New("departamento y municipio son obligatorios")
	}
	cliente := &model.Cliente{
		Departamento:    req.Departamento,
		Municipio:       req.Municipio,
		NombreComercial: req.NombreComercial,
		Identificacion:  req.Identificacion,
		Direccion:       req.Direccion,
		TelefonoFijo:    req.TelefonoFijo,
		TelefonoCelular: req.TelefonoCelular,
		Correo:          req.Correo,
		Activo:          true,
		Notas:           req.Notas,
	}
	if err := s.clientes.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *maestrosService) CrearProveedor(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	if req.NombreComercial == "" {
		return nil, errors.New("nombre_comercial es obligatorio")
	}
	tipo := req.Tipo
	if tipo == "" {
		tipo = model.ProveedorNoClasificado
	}
	proveedor := &model.Proveedor{
		NombreComercial: req.NombreComercial,
		Tipo:            tipo,
		Identificacion:  req.Identificacion,
		Departamento:    req.Departamento,
		Municipio:       req.Municipio,
		Direccion:       req.Direccion,
		TelefonoFijo:    req.TelefonoFijo,
		TelefonoCelular: req.TelefonoCelular,
		Correo:          req.Correo,
		Activo:          true,
	}
	if err := s.proveedores.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedor, nil
}

func (s *maestrosService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	if req.Nombre == "" {
		return nil, errors.New("nombre es obligatorio")
	}
	if req.PrecioMin.GreaterThan(req.PrecioMax) {
		return nil, fmt.Errorf("precio_min %s no puede superar precio_max %s", req.PrecioMin, req.PrecioMax)
	}
	if len(req.Presentaciones) == 0 {
		return nil, errors.New("el producto necesita al menos una presentación")
	}
	moqs := 0
	for _, p := range req.Presentaciones {
		if p.UnidadesPorMoq < 1 {
			return nil, fmt.Errorf("unidades_por_moq inválido en la presentación %s", p.Nombre)
		}
		if p.EsMoq {
			moqs++
		}
	}
	if moqs != 1 {
		return nil, errors.New("el producto debe tener exactamente una presentación marcada como MOQ")
	}

	producto := &model.Producto{
		Nombre:     req.Nombre,
		ImagenPath: req.ImagenPath,
		PrecioMin:  req.PrecioMin,
		PrecioMax:  req.PrecioMax,
		Activo:     true,
		Notas:      req.Notas,
	}
	for _, p := range req.Presentaciones {
		producto.Presentaciones = append(producto.Presentaciones, model.PresentacionComercial{
			Nombre:         p.Nombre,
			EsMoq:          p.EsMoq,
			UnidadesPorMoq: p.UnidadesPorMoq,
			Activo:         true,
		})
	}
	if err := s.productos.Create(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *maestrosService) CrearMateriaPrima(ctx context.Context, req dto.CrearMateriaPrimaRequest) (*model.MateriaPrima, error) {
	if req.Nombre == "" || req.UnidadMedida == "" {
		return nil, errors.New("nombre y unidad_medida son obligatorios")
	}
	if req.ProveedorID != nil {
		if _, err := s.proveedores.FindByID(ctx, *req.ProveedorID); err != nil {
			return nil, fmt.Errorf("proveedor %d no encontrado", *req.ProveedorID)
		}
	}
	mp := &model.MateriaPrima{
		Nombre:       req.Nombre,
		Tipo:         req.Tipo,
		UnidadMedida: req.UnidadMedida,
		ProveedorID:  req.ProveedorID,
		StockMinimo:  req.StockMinimo,
		ImagenPath:   req.ImagenPath,
		Activo:       true,
	}
	if err := s.materias.Create(ctx, mp); err != nil {
		return nil, err
	}
	return mp, nil
}

func (s *maestrosService) CrearDepartamento(ctx context.Context, nombre string) (*model.Departamento, error) {
	if nombre == "" {
		return nil, errors.New("nombre de departamento vacío")
	}
	d := &model.Departamento{Nombre: nombre}
	if err := s.ubicaciones.CrearDepartamento(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *maestrosService) CrearMunicipio(ctx context.Context, departamentoID int64, nombre string) (*model.Municipio, error) {
	if nombre == "" {
		return nil, errors.New("nombre de municipio vacío")
	}
	m := &model.Municipio{DepartamentoID: departamentoID, Nombre: nombre}
	if err := s.ubicaciones.CrearMunicipio(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maestrosService) ListarMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error) {
	return s.ubicaciones.ListMunicipios(ctx, departamentoID)
}

func (s *maestrosService) ObtenerConfiguracion(ctx context.Context, clave string) (string, error) {
	return s.config.Get(ctx, clave)
}

func (s *maestrosService) ActualizarConfiguracion(ctx context.Context, clave, valor string) error {
	if clave == "" {
		return errors.New("clave vacía")
	}
	return s.config.Set(ctx, clave, valor)
}
