// Package repository owns the application's data.
//
// There is no database: items live in a process-lifetime, mutex-guarded
// map and are lost on restart. Repositories expose plain Go methods so the
// service layer can be pointed at a persistent implementation later.
package repository
