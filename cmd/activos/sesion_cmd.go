package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/activos-consola/internal/application/dto"
)

func newLoginCmd(a *app) *cobra.Command {
	var correo, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión y guarda el token en el archivo de sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lector := bufio.NewReader(a.in)
			if correo == "" {
				fmt.Fprint(a.errOut, "Correo: ")
				linea, _ := lector.ReadString('\n')
				correo = strings.TrimSpace(linea)
			}
			if password == "" {
				password = os.Getenv("ACTIVOS_PASSWORD")
			}
			if password == "" {
				fmt.Fprint(a.errOut, "Contraseña: ")
				linea, _ := lector.ReadString('\n')
				password = strings.TrimRight(linea, "\r\n")
			}

			s, err := a.sesionUC.Login(cmd.Context(), dto.LoginRequest{Correo: correo, Password: password})
			if err != nil {
				return err
			}
			if err := a.store.Save(cmd.Context(), s); err != nil {
				return err
			}
			a.sesion = s
			nombre := correo
			if s.Usuario != nil && s.Usuario.Nombre != "" {
				nombre = s.Usuario.Nombre
			}
			fmt.Fprintf(a.out, "Sesión iniciada como %s (%d permisos)\n", nombre, len(s.Permisos))
			return nil
		},
	}

	cmd.Flags().StringVar(&correo, "correo", "", "Correo del operador")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña (o ACTIVOS_PASSWORD; si falta se pide por la entrada estándar)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra el archivo de sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.sesionUC.Logout(a.sesion)
			if err := a.store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Sesión cerrada")
			return nil
		},
	}
}

func newPermisosCmd(a *app) *cobra.Command {
	var refrescar bool

	cmd := &cobra.Command{
		Use:   "permisos",
		Short: "Muestra los permisos de la sesión agrupados por módulo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := a.contexto(cmd)
			if err != nil {
				return err
			}
			if refrescar {
				a.sesionUC.RefrescarPermisos(ctx, a.sesion)
				if err := a.store.Save(ctx, a.sesion); err != nil {
					return err
				}
			}
			if a.json {
				return a.writeJSON(a.sesion.Permisos)
			}
			return imprimirGrupos(a.out, a.sesionUC.PermisosAgrupados(a.sesion))
		},
	}

	cmd.Flags().BoolVar(&refrescar, "refrescar", false, "Vuelve a pedir los permisos al backend")
	return cmd
}
