package guardado

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/albertmmateo-blip/entretelas-api/internal/domain/entity"
)

// ClaveSinAsignar es la clave del grupo de artículos sin lugar.
const ClaveSinAsignar = "__unassigned__"

// GrupoUbicacion reúne los artículos de un producto que comparten ubicación
// (lugar, compartimento), con los nombres desnormalizados para la vista.
type GrupoUbicacion struct {
	Clave               string           `json:"clave"`
	LugarID             *int64           `json:"lugar_id"`
	CompartimentoID     *int64           `json:"compartimento_id"`
	LugarNombre         string           `json:"lugar_nombre"`
	CompartimentoNombre string           `json:"compartimento_nombre"`
	Articulos           []entity.Articulo `json:"articulos"`
}

func claveUbicacion(a entity.Articulo) string {
	if a.LugarID == nil {
		return ClaveSinAsignar
	}
	clave := strconv.FormatInt(*a.LugarID, 10) + ":"
	if a.CompartimentoID != nil {
		clave += strconv.FormatInt(*a.CompartimentoID, 10)
	}
	return clave
}

// AgruparArticulosPorUbicacion parte los artículos de un producto en grupos
// por (lugar, compartimento). Los artículos sin lugar forman un único grupo
// final con ClaveSinAsignar. Los grupos se ordenan por nombre de lugar y
// después de compartimento con colación española sin distinguir mayúsculas;
// el grupo sin asignar va siempre el último, se llame como se llame el resto.
func AgruparArticulosPorUbicacion(articulos []entity.Articulo) []GrupoUbicacion {
	porClave := make(map[string]*GrupoUbicacion)
	orden := make([]string, 0, len(articulos))

	for _, a := range articulos {
		clave := claveUbicacion(a)
		g := porClave[clave]
		if g == nil {
			g = &GrupoUbicacion{
				Clave:               clave,
				LugarID:             a.LugarID,
				CompartimentoID:     a.CompartimentoID,
				LugarNombre:         a.LugarNombre,
				CompartimentoNombre: a.CompartimentoNombre,
			}
			if clave == ClaveSinAsignar {
				g.LugarNombre = ""
				g.CompartimentoNombre = ""
				g.CompartimentoID = nil
			}
			porClave[clave] = g
			orden = append(orden, clave)
		}
		g.Articulos = append(g.Articulos, a)
	}

	grupos := make([]GrupoUbicacion, 0, len(orden))
	for _, clave := range orden {
		grupos = append(grupos, *porClave[clave])
	}

	col := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(grupos, func(i, j int) bool {
		gi, gj := grupos[i], grupos[j]
		if gi.Clave == ClaveSinAsignar {
			return false
		}
		if gj.Clave == ClaveSinAsignar {
			return true
		}
		if cmp := col.CompareString(gi.LugarNombre, gj.LugarNombre); cmp != 0 {
			return cmp < 0
		}
		return col.CompareString(gi.CompartimentoNombre, gj.CompartimentoNombre) < 0
	})
	return grupos
}
