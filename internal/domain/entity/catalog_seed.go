package entity

// DefaultDeviceCatalog devuelve el catálogo de fábrica de dispositivos por
// cliente. Se usa cuando no hay catálogo persistido y al reiniciar el
// sistema; la importación de un libro de catálogo lo sobreescribe por
// cliente. Cada llamada devuelve una copia fresca.
func DefaultDeviceCatalog() DeviceCatalog {
	catalog := DeviceCatalog{
		ClienteBanamex: {
			{Category: CategoriaAlarmas, Device: "BASE DE HOCHIKI", Model: "NS6-100"},
			{Category: CategoriaAlarmas, Device: "BOTÓN DE ASALTO DMP", Model: "1142 - BC"},
			{Category: CategoriaAlarmas, Device: "CONTACTO MAGNÉTICO", Model: "7939WG-WH"},
			{Category: CategoriaAlarmas, Device: "DETECTOR DE HUMO", Model: "SF119-4(12)"},
			{Category: CategoriaAlarmas, Device: "DETECTOR DE MOVIMIENTO", Model: "LC100"},
			{Category: CategoriaAlarmas, Device: "DETECTOR DE MOVIMIENTO", Model: "DT 8035"},
			{Category: CategoriaAlarmas, Device: "ESTACIÓN MANUAL", Model: "BG-12LSP"},
			{Category: CategoriaAlarmas, Device: "EXPANSORA DMP", Model: "714-16"},
			{Category: CategoriaAlarmas, Device: "MÓDULO RELAY DMP", Model: "716"},
			{Category: CategoriaAlarmas, Device: "MONEY CLIP DMP", Model: "1139"},
			{Category: CategoriaAlarmas, Device: "RECEPTORA DMP", Model: "1100X"},
			{Category: CategoriaAlarmas, Device: "SIRENA", Model: "VARIOS"},
			{Category: CategoriaAlarmas, Device: "TARJETA DMP", Model: "XR550-DN"},
			{Category: CategoriaAlarmas, Device: "TECLADO DMP", Model: "7060W"},
			{Category: CategoriaCCTV, Device: "CÁMARA 360° OJO DE PEZ IP", Model: "XNF-8010R"},
			{Category: CategoriaCCTV, Device: "CÁMARA ANALOGICA INT.", Model: "HCD-6070R"},
			{Category: CategoriaCCTV, Device: "CÁMARA IP INT.", Model: "QND-6082R"},
			{Category: CategoriaCCTV, Device: "CAMARA IP EXT.", Model: "QNV-6082R"},
			{Category: CategoriaCCTV, Device: "GRABADOR DVR", Model: "SRD-1676DN"},
			{Category: CategoriaCCTV, Device: "GRABADOR NVR", Model: "XRN-6410"},
			{Category: CategoriaCCTV, Device: "HDD 8TB", Model: "WD8002PURP"},
			{Category: CategoriaCCTV, Device: "MONITOR CCTV (VARIOS TAMAÑOS)", Model: "VARIOS"},
			{Category: CategoriaCCTV, Device: "PTZ IP", Model: "QNP-6230RH"},
			{Category: CategoriaCCTV, Device: "TRANSCEPTOR", Model: "EPCOM"},
			{Category: CategoriaAcceso, Device: "BOTÓN DE LIBERACIÓN", Model: "PRO800B / RP-26"},
			{Category: CategoriaAcceso, Device: "CONTRA ELÉCTRICA", Model: "LOCK / PHILLIPS"},
			{Category: CategoriaAcceso, Device: "ELECTROIMÁN (1200 LB)", Model: "ACCESSPRO"},
			{Category: CategoriaAcceso, Device: "FUENTE DE INTERFÓN", Model: "PS-1225UL"},
			{Category: CategoriaAcceso, Device: "LECTORA", Model: "R10"},
			{Category: CategoriaAcceso, Device: "LECTORA", Model: "R20"},
			{Category: CategoriaAcceso, Device: "LÓGICA ESCLUSA", Model: "CUTRON"},
			{Category: CategoriaAcceso, Device: "TECLADO ESCLUSA", Model: "CUTRON"},
			{Category: CategoriaMiscelaneos, Device: "JACKS (PATCHPANEL)", Model: "VARIOS"},
			{Category: CategoriaMiscelaneos, Device: "LAMPARA LED", Model: "COMEXA"},
			{Category: CategoriaCableado, Device: "CABLE 2X18 (ML)", Model: "ML"},
			{Category: CategoriaCableado, Device: "CABLE 4X22 (ML)", Model: "ML"},
			{Category: CategoriaCableado, Device: "CABLE COAXIAL (ML)", Model: "ML"},
			{Category: CategoriaCableado, Device: "CABLE UTP CAT 6 (ML)", Model: "ML"},
			{Category: CategoriaCableado, Device: "FLEXIBLE 3/4\" (ML)", Model: "ML"},
			{Category: CategoriaFuentes, Device: "FUENTE DE ALIMENTACIÓN 3 AMP", Model: "SMP3"},
			{Category: CategoriaFuentes, Device: "FUENTE DE ALIMENTACIÓN 5 AMP", Model: "SMP5"},
			{Category: CategoriaFuentes, Device: "FUENTE DE ALIMENTACIÓN 6 AMP", Model: "AL600ULXB"},
		},
		ClienteSantander: {
			{Category: CategoriaAlarmas, Device: "Panel de Alarma DMP", Model: "XR550"},
			{Category: CategoriaAlarmas, Device: "Panel de Alarma Bosch", Model: "B9512G"},
			{Category: CategoriaAlarmas, Device: "Tarjeta Módulo Expansor DMP", Model: "716"},
			{Category: CategoriaAlarmas, Device: "Command Center Bosch", Model: "B920"},
			{Category: CategoriaAlarmas, Device: "Comunicador Celular DMP", Model: "263LTE"},
			{Category: CategoriaAlarmas, Device: "Sensor de Movimiento (PIR) DMP", Model: "1121 (DM 90)"},
			{Category: CategoriaAlarmas, Device: "Detector Movimiento Bosch", Model: "ISC-PDL1-W18G"},
			{Category: CategoriaAlarmas, Device: "Detector Ruptura Cristal (DRC) DMP", Model: "1128"},
			{Category: CategoriaAlarmas, Device: "Detector de Humo (DH) DMP", Model: "1164"},
			{Category: CategoriaAlarmas, Device: "Contacto Magnético (CM) DMP", Model: "1101/1106"},
			{Category: CategoriaAcceso, Device: "Lector Wiegand DMP", Model: "734"},
			{Category: CategoriaAcceso, Device: "Lector Biométrico Spider", Model: "3i SPIDER"},
			{Category: CategoriaAcceso, Device: "Botón de Pánico (B.A.) DMP", Model: "1142 / 1148-G"},
			{Category: CategoriaAcceso, Device: "Cerradura Kaba", Model: "252 P/CF / R100"},
			{Category: CategoriaAcceso, Device: "Electroimán Seco-Larm", Model: "E941SA"},
			{Category: CategoriaCCTV, Device: "DVR Scati", Model: "SANM-W7E-X01-4TB"},
			{Category: CategoriaCCTV, Device: "NVR Scati", Model: "SANM-W7E-X02-24TB"},
			{Category: CategoriaCCTV, Device: "Disco Duro WD Purple", Model: "WD30PURX (3TB)"},
			{Category: CategoriaCCTV, Device: "Domo Bosch", Model: "VDN5085V"},
			{Category: CategoriaCCTV, Device: "Domo Scati", Model: "SIM-3511VR-XYMA"},
			{Category: CategoriaMiscelaneos, Device: "Caja de Transferencia", Model: "BTV CEN4"},
			{Category: CategoriaMiscelaneos, Device: "Esclusa Unipersonal", Model: "Curtisa CM96"},
			{Category: CategoriaMiscelaneos, Device: "Cierrapuertas Dorma", Model: "7305 / TS COMPA"},
			{Category: CategoriaFuentes, Device: "Fuente de Poder Altronix", Model: "SMP-3 / SMP-5 / SMP7"},
			{Category: CategoriaFuentes, Device: "Batería 12V 7A", Model: "Epcom / Genesis"},
			{Category: CategoriaCableado, Device: "Cable Coaxial", Model: "Belden RG59"},
			{Category: CategoriaCableado, Device: "Cable UTP", Model: "Belden CAT6"},
		},
	}
	return catalog
}
