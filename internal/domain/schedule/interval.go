package schedule

import "iter"

// EnumerateSlots gera os inícios possíveis dentro da janela, avançando
// stepMin a cada passo. Um início só é produzido quando início+duração
// cabe na janela. Cada chamada a range recomeça do zero.
func EnumerateSlots(w Window, stepMin, durationMin int) iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		if stepMin <= 0 || durationMin <= 0 {
			return
		}

		// compara pela folga restante para não estourar com durações enormes
		for cur := w.Start; cur <= w.End && durationMin <= int(w.End-cur); {
			if !yield(cur) {
				return
			}
			if stepMin > int(w.End-cur) {
				return
			}
			cur = cur.Add(stepMin)
		}
	}
}

// Overlaps usa comparação estrita: um atendimento que termina às 10:00
// não bloqueia um horário que começa às 10:00.
func Overlaps(aStart TimeOfDay, aDur int, bStart TimeOfDay, bDur int) bool {
	return int(aStart-bStart) < bDur && int(bStart-aStart) < aDur
}
